package ecs

// System updates a world each frame.
type System interface {
	Update(w *World)
}

// SystemFunc adapts a plain function to System.
type SystemFunc func(w *World)

func (f SystemFunc) Update(w *World) {
	f(w)
}

// Stage groups systems within a frame. Stages run in ascending order.
type Stage int

const (
	PreUpdate Stage = iota
	Update
	PostUpdate

	stageCount
)

func (s Stage) String() string {
	switch s {
	case PreUpdate:
		return "pre_update"
	case Update:
		return "update"
	case PostUpdate:
		return "post_update"
	default:
		return "unknown"
	}
}

// Scheduler runs systems stage by stage, in registration order within a
// stage. The world tick is advanced before every system so change
// detection can tell one system's writes from the next.
type Scheduler struct {
	stages [stageCount][]System
}

func NewScheduler(systems ...System) *Scheduler {
	s := &Scheduler{}
	for _, system := range systems {
		s.Add(Update, system)
	}
	return s
}

// Add appends system to stage. Unknown stages fall back to Update.
func (s *Scheduler) Add(stage Stage, system System) {
	if system == nil {
		return
	}
	if stage < 0 || stage >= stageCount {
		stage = Update
	}
	s.stages[stage] = append(s.stages[stage], system)
}

// Update runs one frame. The tick is also advanced once the frame ends, so
// writes made between frames are newer than every system's last run.
func (s *Scheduler) Update(w *World) {
	for _, systems := range s.stages {
		for _, system := range systems {
			w.AdvanceTick()
			system.Update(w)
		}
	}
	w.AdvanceTick()
}

// Systems returns the systems of stage in run order.
func (s *Scheduler) Systems(stage Stage) []System {
	if stage < 0 || stage >= stageCount {
		return nil
	}
	systems := make([]System, 0, len(s.stages[stage]))
	return append(systems, s.stages[stage]...)
}
