package cmd

import (
	"fmt"

	"github.com/loom-ui/loom/cmd/loom/internal/config"
	"github.com/loom-ui/loom/pkg/component"
	"github.com/loom-ui/loom/pkg/host"
	"github.com/loom-ui/loom/pkg/props"
)

func init() {
	RegisterCommand(&Command{
		Name:  "render",
		Short: "Render the demo component to stdout",
		Long: `Mount a demo component on an in-memory document, pump the render
loop to quiescence, and print the resulting markup.

Reads loom.yaml for the tag prefix and document direction when run inside
a project; outside a project it falls back to built-in defaults.

Flags:
  --name=NAME    Value for the demo component's name property
  --rtl          Render with a right-to-left document`,
		Usage: "loom render [--name=NAME] [--rtl]",
		Run:   runRender,
	})
}

// demo is the component the render command mounts.
type demo struct {
	component.Core
}

func (d *demo) Properties() props.Map {
	return props.Map{
		"name":    {Type: props.String, Default: "world", Reflected: true},
		"excited": {Type: props.Boolean, Default: false, Reflected: true},
	}
}

func (d *demo) Styles() string {
	return ":host { display: block; }"
}

func (d *demo) Render() string {
	punct := "."
	if d.Get("excited") == true {
		punct = "!"
	}
	return fmt.Sprintf("<p>Hello, %v%s</p>", d.Get("name"), punct)
}

func runRender(args []string) error {
	prefix := "loom-"
	dir := "ltr"
	if root, err := config.FindProjectRoot(); err == nil {
		cfg, err := config.Resolve(root)
		if err != nil {
			return err
		}
		prefix = cfg.Prefix
		dir = cfg.Dir
	}

	name := ""
	for _, arg := range args {
		flag, value, ok := splitFlag(arg)
		if !ok {
			return fmt.Errorf("unexpected argument %q\n\nUsage: loom render [--name=NAME] [--rtl]", arg)
		}
		switch flag {
		case "--name":
			name = value
		case "--rtl":
			dir = "rtl"
		default:
			return fmt.Errorf("unknown flag %q", flag)
		}
	}

	doc := host.NewDocument()
	doc.SetDir(dir)

	pump := &framePump{}
	el := host.NewElement(prefix + "demo")
	inst := component.New(el, &demo{}, component.WithFrameSource(pump))
	doc.Append(el)

	if name != "" {
		inst.Set("name", name)
		inst.Set("excited", true)
	}
	pump.Drain()

	fmt.Println(el.OuterHTML())
	fmt.Println(inst.Shadow().InnerHTML())
	return nil
}

// framePump is a frame source drained to quiescence on demand, so renders
// requested during lifecycle hooks still run before the command prints.
type framePump struct {
	queue []*pumpFrame
}

type pumpFrame struct {
	fn        func()
	cancelled bool
}

func (p *framePump) RequestFrame(fn func()) (cancel func()) {
	frame := &pumpFrame{fn: fn}
	p.queue = append(p.queue, frame)
	return func() { frame.cancelled = true }
}

// Drain fires frames until none are queued and returns the number of
// callbacks run.
func (p *framePump) Drain() int {
	ran := 0
	for len(p.queue) > 0 {
		frames := p.queue
		p.queue = nil
		for _, f := range frames {
			if f.cancelled {
				continue
			}
			f.fn()
			ran++
		}
	}
	return ran
}
