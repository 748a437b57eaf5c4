package errors

import "go.uber.org/zap"

// ZapHandler forwards runtime errors, warnings, and panics to a zap logger.
// A nil logger falls back to zap.NewNop.
type ZapHandler struct {
	log *zap.Logger
}

// NewZapHandler creates a Handler backed by the given logger.
func NewZapHandler(log *zap.Logger) *ZapHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &ZapHandler{log: log}
}

// HandleError logs an Error at error level.
func (h *ZapHandler) HandleError(err *Error) {
	if err == nil {
		return
	}
	fields := []zap.Field{
		zap.String("op", err.Op),
		zap.Stringer("kind", err.Kind),
		zap.Error(err.Err),
	}
	if err.Component != "" {
		fields = append(fields, zap.String("component", err.Component))
	}
	if err.StackTrace != "" {
		fields = append(fields, zap.String("stack", err.StackTrace))
	}
	h.log.Error("loom error", fields...)
}

// HandleWarning logs a Warning at warn level.
func (h *ZapHandler) HandleWarning(w *Warning) {
	if w == nil {
		return
	}
	fields := []zap.Field{zap.String("op", w.Op)}
	if w.Component != "" {
		fields = append(fields, zap.String("component", w.Component))
	}
	h.log.Warn(w.Message, fields...)
}

// HandlePanic logs a PanicError at error level.
func (h *ZapHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	h.log.Error("loom panic",
		zap.String("op", err.Op),
		zap.Any("value", err.Value),
		zap.String("stack", err.StackTrace),
	)
}
