// Package deviceopts holds the per-family controller options of the host:
// one enablement record and one settings group for each supported controller
// family (DS4, DualSense, Switch Pro, JoyCon).
//
// Every tunable is a notify.Setting, so subscribers see only genuine value
// transitions. Settings groups implement ControllerOptionsStore and save or
// restore themselves under their own element of a shared etree document.
// Loading never fails: missing or unreadable data leaves the affected field
// (or, for the DS4 group, the whole group) at its current value.
//
// DeviceOptions is the aggregate the rest of the host reads and mutates. It
// owns the records and groups and a process-lifetime verbose logging flag
// that is never written to disk.
package deviceopts
