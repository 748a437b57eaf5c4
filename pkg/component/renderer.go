package component

// Renderer is the external diff/patch collaborator. Patch computes the
// instance's next output against its last and commits the result to the
// rendering context; Destroy releases that context's resources. The core
// treats both as black boxes: any failure is the renderer's to surface,
// typically as a fault in the frame callback.
type Renderer interface {
	Patch(inst *Instance)
	Destroy(inst *Instance)
}

// MarkupRenderer is the default renderer: no diffing, it commits the
// component's markup to the shadow root verbatim and records it as the
// instance's last output.
type MarkupRenderer struct{}

// Patch renders and commits.
func (MarkupRenderer) Patch(inst *Instance) {
	markup := inst.RenderMarkup()
	if shadow := inst.Shadow(); shadow != nil {
		shadow.Commit(markup)
	}
	inst.SetLastOutput(markup)
}

// Destroy releases the shadow content and forgets the last output.
func (MarkupRenderer) Destroy(inst *Instance) {
	if shadow := inst.Shadow(); shadow != nil {
		shadow.Release()
	}
	inst.SetLastOutput("")
}
