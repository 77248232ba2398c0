package deviceopts

import (
	"log/slog"

	"github.com/beevik/etree"

	"padhost/internal/deviceopts/dtoxml"
	"padhost/internal/logging"
	"padhost/internal/notify"
	"padhost/internal/xmlnode"
)

// DefaultCopyCat is the DS4 copycat default.
const DefaultCopyCat = false

// DS4ControllerOptions is the DS4 settings group. Its subtree is produced by
// dtoxml.DS4ControllerOptsDTO; a subtree that fails to decode is ignored as
// a whole.
type DS4ControllerOptions struct {
	storeBase
	// CopyCat marks a controller that reports as a DS4 without being one, so
	// the host can avoid features the clone does not implement.
	CopyCat *notify.Setting[bool]
}

// NewDS4ControllerOptions returns a DS4 settings group with defaults.
func NewDS4ControllerOptions(deviceType DeviceType, logger *slog.Logger) *DS4ControllerOptions {
	return &DS4ControllerOptions{
		storeBase: newStoreBase(deviceType, logger),
		CopyCat:   notify.NewSetting("Copycat", DefaultCopyCat),
	}
}

// IsCopyCat reports the copycat flag.
func (o *DS4ControllerOptions) IsCopyCat() bool { return o.CopyCat.Get() }

// SetIsCopyCat assigns the copycat flag.
func (o *DS4ControllerOptions) SetIsCopyCat(v bool) { o.CopyCat.Set(v) }

// PersistSettings writes the DTO form of the group under node.
func (o *DS4ControllerOptions) PersistSettings(doc *etree.Document, node *etree.Element) {
	var dto dtoxml.DS4ControllerOptsDTO
	dto.MapFrom(o)

	fragment, err := dto.Encode()
	if err != nil {
		o.logger.Warn("ds4 settings not written", logging.Error(err))
		return
	}
	el, err := xmlnode.ParseFragment(fragment)
	if err != nil {
		o.logger.Warn("ds4 settings not written", logging.Error(err))
		return
	}
	xmlnode.StripNamespaces(el)
	xmlnode.Replace(node, el)
}

// LoadSettings restores the group from its subtree under node. Any decode
// failure leaves every field unchanged.
func (o *DS4ControllerOptions) LoadSettings(doc *etree.Document, node *etree.Element) {
	base := xmlnode.Child(node, DS4ElementName)
	if base == nil {
		return
	}

	fragment, err := xmlnode.OuterXML(base)
	if err != nil {
		o.logger.Debug("ds4 settings ignored", logging.Error(err))
		return
	}

	// Seed with the current values so elements missing from the fragment
	// keep them.
	var dto dtoxml.DS4ControllerOptsDTO
	dto.MapFrom(o)
	if err := dto.Decode(fragment); err != nil {
		o.logger.Debug("ds4 settings ignored", logging.Error(err))
		return
	}
	dto.MapTo(o)
}

// Tunables lists the group's fields.
func (o *DS4ControllerOptions) Tunables() []Tunable {
	return []Tunable{boolTunable(o.CopyCat, true)}
}
