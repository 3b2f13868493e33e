package console

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrFormClosed is returned when Submit is called on a form that is not
	// open.
	ErrFormClosed = errors.New("form is not open")
	// ErrValidation is returned when the draft fails validation, with the
	// field messages available via FieldErrors.
	ErrValidation = errors.New("draft failed validation")
	// ErrAttachmentTooLarge rejects a staged file over the configured limit.
	ErrAttachmentTooLarge = errors.New("attachment exceeds maximum size")
	// ErrAttachmentType rejects a staged file of an unexpected content type.
	ErrAttachmentType = errors.New("attachment content type not allowed")
)

// stagedAttachment is a file waiting to be uploaded once the draft is saved.
type stagedAttachment struct {
	method string
	att    Attachment
	path   func(id string) string
}

// FormController drives one create-or-edit form. Opening with a record edits
// a deep copy of it, so typing never mutates the row still visible in the
// list behind the dialog; opening with nil starts a create draft.
//
// Submit is non-reentrant: while a save is in flight further submits are
// ignored, and closing the form discards the result of any in-flight save.
type FormController[T any] struct {
	client   *Client
	path     string
	validate *validator.Validate
	notifier Notifier

	defaults  func(ctx context.Context, c *Client) (T, error)
	identify  func(T) string
	onSuccess func(T)

	maxAttachBytes int64
	allowPrefixes  []string

	mu          sync.Mutex
	open        bool
	editing     bool
	recordID    string
	draft       T
	fieldErrs   map[string]string
	submitErr   error
	submitting  bool
	submitGen   uint64
	attachments []stagedAttachment
}

// FormOption configures a FormController.
type FormOption[T any] func(*FormController[T])

// WithDefaults supplies the draft for a create form. It runs once per Open,
// which is where an eagerly reserved document number belongs: fetch it here
// so the user sees the assigned number while filling in the rest.
func WithDefaults[T any](fn func(ctx context.Context, c *Client) (T, error)) FormOption[T] {
	return func(f *FormController[T]) { f.defaults = fn }
}

// WithIdentify overrides how the record id is derived from a draft. The
// default reads the "id" field of the record's JSON form.
func WithIdentify[T any](fn func(T) string) FormOption[T] {
	return func(f *FormController[T]) { f.identify = fn }
}

// WithNotifier sets the notifier for submit outcomes.
func WithNotifier[T any](n Notifier) FormOption[T] {
	return func(f *FormController[T]) { f.notifier = n }
}

// WithOnSuccess registers a callback invoked with the stored record after a
// successful save, typically to refetch the list behind the form.
func WithOnSuccess[T any](fn func(T)) FormOption[T] {
	return func(f *FormController[T]) { f.onSuccess = fn }
}

// WithAttachmentLimits sets the client-side size ceiling and allowed content
// type prefixes for staged files.
func WithAttachmentLimits[T any](maxBytes int64, prefixes ...string) FormOption[T] {
	return func(f *FormController[T]) {
		f.maxAttachBytes = maxBytes
		f.allowPrefixes = prefixes
	}
}

func NewFormController[T any](client *Client, path string, opts ...FormOption[T]) *FormController[T] {
	f := &FormController[T]{
		client:   client,
		path:     path,
		validate: validator.New(),
		notifier: NopNotifier{},
		identify: identifyJSON[T],
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// identifyJSON pulls the "id" field out of the record's JSON encoding.
func identifyJSON[T any](record T) string {
	raw, err := json.Marshal(record)
	if err != nil {
		return ""
	}
	var probe struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return ""
	}
	return probe.ID
}

// Open starts an editing session. A nil record opens a create form seeded
// from the defaults function; a non-nil record opens an edit form over a
// deep copy of it.
func (f *FormController[T]) Open(ctx context.Context, record *T) error {
	var draft T
	editing := false
	id := ""

	if record == nil {
		if f.defaults != nil {
			d, err := f.defaults(ctx, f.client)
			if err != nil {
				return fmt.Errorf("form defaults: %w", err)
			}
			draft = d
		}
	} else {
		clone, err := deepCopy(*record)
		if err != nil {
			return fmt.Errorf("clone record: %w", err)
		}
		draft = clone
		editing = true
		id = f.identify(draft)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.open = true
	f.editing = editing
	f.recordID = id
	f.draft = draft
	f.fieldErrs = nil
	f.submitErr = nil
	f.submitting = false
	f.attachments = nil
	f.submitGen++
	return nil
}

func deepCopy[T any](record T) (T, error) {
	var clone T
	raw, err := json.Marshal(record)
	if err != nil {
		return clone, err
	}
	if err := json.Unmarshal(raw, &clone); err != nil {
		return clone, err
	}
	return clone, nil
}

// Close abandons the editing session. Any save still in flight completes on
// the server but its result is discarded here.
func (f *FormController[T]) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	var zero T
	f.open = false
	f.editing = false
	f.recordID = ""
	f.draft = zero
	f.fieldErrs = nil
	f.submitErr = nil
	f.submitting = false
	f.attachments = nil
	f.submitGen++
}

// Draft returns the current draft for rendering.
func (f *FormController[T]) Draft() T {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

// SetDraft replaces the draft, as field inputs change.
func (f *FormController[T]) SetDraft(draft T) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft = draft
}

// Update mutates the draft in place through fn.
func (f *FormController[T]) Update(fn func(*T)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fn(&f.draft)
}

// IsOpen reports whether the form is currently open.
func (f *FormController[T]) IsOpen() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.open
}

// Submitting reports whether a save is in flight.
func (f *FormController[T]) Submitting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitting
}

// FieldErrors returns per-field validation messages from the last submit.
func (f *FormController[T]) FieldErrors() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[string]string, len(f.fieldErrs))
	for k, v := range f.fieldErrs {
		out[k] = v
	}
	return out
}

// Err returns the non-validation error from the last submit, if any.
func (f *FormController[T]) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitErr
}

// Attach stages a file to be uploaded with POST to pathFor(recordID) after
// the draft saves. The file is checked against the configured size and
// content type limits before any network traffic happens.
func (f *FormController[T]) Attach(att Attachment, pathFor func(id string) string) error {
	return f.AttachTo(http.MethodPost, att, pathFor)
}

// AttachTo is Attach with an explicit HTTP method, for attach endpoints that
// replace the file in place and are registered as PUT, like the agreement
// document.
func (f *FormController[T]) AttachTo(method string, att Attachment, pathFor func(id string) string) error {
	if f.maxAttachBytes > 0 && att.Size > f.maxAttachBytes {
		return ErrAttachmentTooLarge
	}
	if len(f.allowPrefixes) > 0 && !prefixAllowed(att.ContentType, f.allowPrefixes) {
		return ErrAttachmentType
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.open {
		return ErrFormClosed
	}
	f.attachments = append(f.attachments, stagedAttachment{method: method, att: att, path: pathFor})
	return nil
}

func prefixAllowed(contentType string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(contentType, p) {
			return true
		}
	}
	return false
}

// Submit validates the draft and saves it, then uploads any staged files
// against the stored record's id. Validation failures never reach the
// network. A second Submit while one is in flight is a no-op. On failure the
// draft is kept so nothing the user typed is lost; on success the form
// closes and onSuccess fires with the stored record.
func (f *FormController[T]) Submit(ctx context.Context) error {
	f.mu.Lock()
	if !f.open {
		f.mu.Unlock()
		return ErrFormClosed
	}
	if f.submitting {
		f.mu.Unlock()
		return nil
	}

	draft := f.draft
	if err := f.validate.Struct(draft); err != nil {
		f.fieldErrs = fieldErrors(err)
		f.mu.Unlock()
		return ErrValidation
	}
	f.fieldErrs = nil
	f.submitting = true
	gen := f.submitGen
	editing := f.editing
	recordID := f.recordID
	attachments := f.attachments
	f.mu.Unlock()

	stored, err := f.save(ctx, draft, editing, recordID)
	if err == nil && len(attachments) > 0 {
		err = f.upload(ctx, f.identify(stored), attachments)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if gen != f.submitGen {
		return nil
	}
	f.submitting = false
	if err != nil {
		f.submitErr = err
		f.notifier.Error(err.Error())
		return err
	}

	f.notifier.Success("saved")
	if f.onSuccess != nil {
		f.onSuccess(stored)
	}
	f.closeLocked()
	return nil
}

func (f *FormController[T]) save(ctx context.Context, draft T, editing bool, id string) (T, error) {
	if editing {
		return Update(ctx, f.client, f.path, id, draft)
	}
	return Create(ctx, f.client, f.path, draft)
}

func (f *FormController[T]) upload(ctx context.Context, id string, staged []stagedAttachment) error {
	for _, s := range staged {
		if _, err := Upload[json.RawMessage](ctx, f.client, s.method, s.path(id), s.att); err != nil {
			return err
		}
	}
	return nil
}

func (f *FormController[T]) closeLocked() {
	var zero T
	f.open = false
	f.editing = false
	f.recordID = ""
	f.draft = zero
	f.submitErr = nil
	f.attachments = nil
	f.submitGen++
}

// fieldErrors flattens validator output into a field → message map.
func fieldErrors(err error) map[string]string {
	out := make(map[string]string)
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		out["_"] = err.Error()
		return out
	}
	for _, fe := range ve {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			out[field] = field + " is required"
		case "len":
			out[field] = fmt.Sprintf("%s must be exactly %s characters", field, fe.Param())
		case "gt":
			out[field] = fmt.Sprintf("%s must be greater than %s", field, fe.Param())
		case "gte":
			out[field] = fmt.Sprintf("%s must be at least %s", field, fe.Param())
		case "min":
			out[field] = fmt.Sprintf("%s must have at least %s", field, fe.Param())
		case "oneof":
			out[field] = fmt.Sprintf("%s must be one of: %s", field, fe.Param())
		default:
			out[field] = fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
		}
	}
	return out
}
