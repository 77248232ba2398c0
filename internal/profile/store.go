package profile

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/beevik/etree"
	"github.com/gofrs/flock"

	"padhost/internal/deviceopts"
	"padhost/internal/fileutil"
	"padhost/internal/logging"
	"padhost/internal/xmlnode"
)

// Element names of the document skeleton.
const (
	RootElementName              = "Profile"
	DeviceOptionsElementName     = "DeviceOptions"
	ControllerOptionsElementName = "ControllerOptions"
)

// Suffixes of the files kept beside the document.
const (
	LockSuffix    = ".lock"
	BackupSuffix  = ".bak"
	CorruptSuffix = ".corrupt"
)

// ErrLocked reports that another process holds the document lock.
var ErrLocked = errors.New("profile is locked by another process")

// Option customizes a Store.
type Option func(*Store)

// WithBackup controls whether Save copies the previous document to
// path+".bak" before replacing it. Backups are on by default.
func WithBackup(enabled bool) Option {
	return func(s *Store) {
		s.backup = enabled
	}
}

// Store is the locked, in-memory copy of a settings document.
type Store struct {
	path   string
	doc    *etree.Document
	lock   *flock.Flock
	logger *slog.Logger
	backup bool
	closed bool
}

// Open locks path and reads the document. A missing file yields an empty
// document. A file that does not parse is copied to path+".corrupt" and
// replaced in memory by an empty document.
func Open(path string, logger *slog.Logger, opts ...Option) (*Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("profile path is required")
	}

	s := &Store{
		path:   path,
		lock:   flock.New(path + LockSuffix),
		logger: logging.NewComponentLogger(logger, "profile").With(logging.String(logging.FieldPath, path)),
		backup: true,
	}
	for _, opt := range opts {
		opt(s)
	}

	ok, err := s.lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire profile lock: %w", err)
	}
	if !ok {
		return nil, ErrLocked
	}

	doc, err := s.read()
	if err != nil {
		_ = s.lock.Unlock()
		return nil, err
	}
	s.doc = doc
	return s, nil
}

func (s *Store) read() (*etree.Document, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		s.logger.Debug("profile not found; starting empty")
		return newDocument(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}

	doc, parseErr := Parse(data)
	if parseErr == nil {
		return doc, nil
	}

	corrupt := s.path + CorruptSuffix
	if err := fileutil.Snapshot(s.path, corrupt); err != nil {
		s.logger.Warn("failed to preserve unreadable profile", logging.Error(err))
	}
	s.logger.Warn("profile unreadable; using defaults",
		logging.String("preserved_as", corrupt),
		logging.Error(parseErr),
	)
	return newDocument(), nil
}

// Parse reads a settings document and checks that its root is <Profile>.
func Parse(data []byte) (*etree.Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, err
	}
	root := doc.Root()
	if root == nil {
		return nil, errors.New("document has no root element")
	}
	if root.Tag != RootElementName {
		return nil, fmt.Errorf("unexpected root element %q", root.Tag)
	}
	return doc, nil
}

func newDocument() *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="utf-8"`)
	doc.CreateElement(RootElementName)
	return doc
}

// Path returns the document path.
func (s *Store) Path() string { return s.path }

// Document returns the in-memory document. Changes are written by Save.
func (s *Store) Document() *etree.Document { return s.doc }

// Load applies the enablement records and every settings group stored in
// the document to opts. Missing or unreadable values keep their current
// state; Load itself never fails.
func (s *Store) Load(opts *deviceopts.DeviceOptions) {
	root := s.doc.Root()

	records := xmlnode.Child(root, DeviceOptionsElementName)
	for _, record := range opts.Enablements() {
		s.loadEnablement(records, record)
	}

	groups := xmlnode.Child(root, ControllerOptionsElementName)
	if groups == nil {
		return
	}
	for _, store := range opts.Stores() {
		store.LoadSettings(s.doc, groups)
	}
}

func (s *Store) loadEnablement(parent *etree.Element, record deviceopts.EnablementRecord) {
	el := xmlnode.Child(parent, record.Family().ElementName())
	if el == nil {
		return
	}
	text, err := xmlnode.ChildText(el, deviceopts.EnabledElementName)
	if err != nil {
		return
	}
	v, err := xmlnode.ParseBool(text)
	if err != nil {
		s.logger.Debug("enablement not applied; keeping current value",
			logging.String(logging.FieldFamily, record.Family().String()),
			logging.String(logging.FieldValue, text),
			logging.Error(err),
		)
		return
	}
	record.EnabledSetting().Set(v)
}

// Save writes the enablement records and every settings group of opts into
// the document and replaces the file on disk.
func (s *Store) Save(opts *deviceopts.DeviceOptions) error {
	if s.closed {
		return errors.New("profile store is closed")
	}
	root := s.doc.Root()

	records := ensureChild(root, DeviceOptionsElementName)
	for _, record := range opts.Enablements() {
		el := etree.NewElement(record.Family().ElementName())
		xmlnode.AddText(el, deviceopts.EnabledElementName, xmlnode.FormatBool(record.EnabledSetting().Get()))
		xmlnode.Replace(records, el)
	}

	groups := ensureChild(root, ControllerOptionsElementName)
	for _, store := range opts.Stores() {
		store.PersistSettings(s.doc, groups)
	}

	return s.write()
}

func ensureChild(parent *etree.Element, tag string) *etree.Element {
	if child := xmlnode.Child(parent, tag); child != nil {
		return child
	}
	return parent.CreateElement(tag)
}

func (s *Store) write() error {
	s.doc.Indent(2)
	data, err := s.doc.WriteToBytes()
	if err != nil {
		return fmt.Errorf("serialize profile: %w", err)
	}

	if s.backup {
		if _, err := os.Stat(s.path); err == nil {
			if err := fileutil.Snapshot(s.path, s.path+BackupSuffix); err != nil {
				return fmt.Errorf("backup profile: %w", err)
			}
		}
	}

	if err := fileutil.WriteFileAtomic(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write profile: %w", err)
	}
	s.logger.Debug("profile saved", logging.Int("bytes", len(data)))
	return nil
}

// Close releases the document lock. It is safe to call more than once.
func (s *Store) Close() error {
	if s == nil || s.closed {
		return nil
	}
	s.closed = true
	if err := s.lock.Unlock(); err != nil {
		return fmt.Errorf("release profile lock: %w", err)
	}
	return nil
}
