package system

import (
	"fmt"
	"log"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/tiledimage/prefabs"
)

type panScriptRuntime struct {
	scriptPath string
	compiled   *tengo.Compiled
	frame      int
	failed     bool
}

// ScriptedPan returns a PanInput driven by a tengo script loaded through
// prefabs.LoadScript. Each frame the script sees the globals frame and
// period and sets dx and dy. A script that fails at runtime stops the
// camera for good.
func ScriptedPan(scriptPath string, period int) (PanInput, error) {
	src, err := prefabs.LoadScript(scriptPath)
	if err != nil {
		return nil, fmt.Errorf("pan script %s: %w", scriptPath, err)
	}
	rt, err := compilePanScript(scriptPath, src, period)
	if err != nil {
		return nil, err
	}
	return rt.next, nil
}

func compilePanScript(scriptPath string, src []byte, period int) (*panScriptRuntime, error) {
	if period <= 0 {
		period = 1
	}
	script := tengo.NewScript(src)
	_ = script.Add("frame", 0)
	_ = script.Add("period", period)
	script.SetImports(stdlib.GetModuleMap("math"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("pan script %s: compile: %w", scriptPath, err)
	}
	return &panScriptRuntime{scriptPath: scriptPath, compiled: compiled}, nil
}

func (rt *panScriptRuntime) next() (float32, float32) {
	if rt.failed {
		return 0, 0
	}
	frame := rt.frame
	rt.frame++

	if err := rt.compiled.Set("frame", frame); err != nil {
		return rt.fail(frame, err)
	}
	if err := rt.compiled.Run(); err != nil {
		return rt.fail(frame, err)
	}
	return scriptAxis(rt.compiled, "dx"), scriptAxis(rt.compiled, "dy")
}

func (rt *panScriptRuntime) fail(frame int, err error) (float32, float32) {
	log.Printf("pan script %s: frame %d: %v", rt.scriptPath, frame, err)
	rt.failed = true
	return 0, 0
}

// scriptAxis reads a numeric script global clamped to [-1, 1]. Undefined
// globals read as 0.
func scriptAxis(c *tengo.Compiled, name string) float32 {
	if !c.IsDefined(name) {
		return 0
	}
	return float32(max(-1, min(1, c.Get(name).Float())))
}
