// Package schema holds the closed set of kernel domain facts the
// synthesizer expands into training records.
//
// The schema is pure data: frameworks with their callbacks, async
// mechanisms, flat scenario tables, synchronization primitives, and
// hand-authored composite narratives. It is constructed once by Default
// and passed explicitly to consumers; nothing mutates it afterwards.
// Slice order is declaration order and is part of the determinism
// contract - the synthesizer walks facts exactly in this order.
package schema

import "fmt"

// Callback describes one framework callback: when it fires, in which
// execution context, and through which kernel call chain.
type Callback struct {
	Name      string
	Trigger   string
	Context   string
	CallChain []string
	Note      string // optional caveat, empty when absent
}

// Framework groups the callbacks of one kernel framework (usb_driver,
// file_operations, ...).
type Framework struct {
	Name      string
	Callbacks []Callback
}

// AsyncMechanism describes a kernel asynchronous execution mechanism:
// how a handler is bound, what triggers it, and the path from trigger to
// handler invocation.
type AsyncMechanism struct {
	Name         string
	BindFuncs    []string
	TriggerFuncs []string // empty for hardware-triggered mechanisms
	WaitFuncs    []string // optional, only for wait-style mechanisms
	Context      string
	Description  string
	CallChain    []string
	TypicalUse   string
	// FlowSteps is the enumerated mechanism-specific execution flow used
	// in the rendered answer. Timeline, when non-empty, is an
	// arrow-separated summary appended after the flow.
	FlowSteps []string
	Timeline  string
}

// Scenario is a flat named fact: a module lifecycle step, a memory or
// scheduler operation, a network receive flow, or a power management
// operation. CallChain may be empty, in which case no chain section is
// rendered.
type Scenario struct {
	Name        string
	Description string
	Context     string // optional
	CallChain   []string
	Note        string // optional
}

// SyncPrimitive describes a synchronization primitive with separate
// lock/unlock operation sets and an optional contended-path chain.
type SyncPrimitive struct {
	Name           string
	Description    string
	LockFuncs      []string
	UnlockFuncs    []string
	Context        string
	Note           string   // optional
	ContendedChain []string // optional
}

// CompositePhase is one pre-authored phase of a composite scenario.
// Timeline is the single summary line contributed to the rendered
// timeline section.
type CompositePhase struct {
	Title    string
	Body     string
	Timeline string
}

// CompositeScenario is a hand-authored multi-phase narrative spanning
// several facts. It is an opaque rendering unit: phases are pre-authored
// and only concatenated, never derived from other fact kinds.
type CompositeScenario struct {
	Name        string
	Title       string
	Instruction string
	Code        string
	Phases      []CompositePhase
}

// CuratedSample is a hand-authored record with an explicit multi-step
// reasoning section. Rendered as <thinking>...</thinking> followed by
// the answer.
type CuratedSample struct {
	ID         string
	Category   string
	Difficulty string
	Source     string
	Concepts   []string
	Code       string
	Question   string
	Thinking   string
	Answer     string
}

// Schema is the complete fact set. Fields are walked top to bottom by
// the synthesizer; within each field, declaration order.
type Schema struct {
	Frameworks          []Framework
	AsyncMechanisms     []AsyncMechanism
	ModuleLifecycle     []Scenario
	MemoryOperations    []Scenario
	SchedulerOperations []Scenario
	NetworkRXFlows      []Scenario
	PowerManagement     []Scenario
	SyncPrimitives      []SyncPrimitive
	Composites          []CompositeScenario
	Curated             []CuratedSample
}

// Default returns the built-in fact set.
func Default() *Schema {
	return &Schema{
		Frameworks:          defaultFrameworks(),
		AsyncMechanisms:     defaultAsyncMechanisms(),
		ModuleLifecycle:     defaultModuleLifecycle(),
		MemoryOperations:    defaultMemoryOperations(),
		SchedulerOperations: defaultSchedulerOperations(),
		NetworkRXFlows:      defaultNetworkRXFlows(),
		PowerManagement:     defaultPowerManagement(),
		SyncPrimitives:      defaultSyncPrimitives(),
		Composites:          defaultComposites(),
		Curated:             defaultCurated(),
	}
}

// Framework looks up a framework by name.
func (s *Schema) Framework(name string) (Framework, bool) {
	for _, fw := range s.Frameworks {
		if fw.Name == name {
			return fw, true
		}
	}
	return Framework{}, false
}

// Mechanism looks up an async mechanism by name.
func (s *Schema) Mechanism(name string) (AsyncMechanism, bool) {
	for _, m := range s.AsyncMechanisms {
		if m.Name == name {
			return m, true
		}
	}
	return AsyncMechanism{}, false
}

// Validate checks the schema invariants: callback and mechanism call
// chains are non-empty, names are non-empty and unique within their
// group, and composites have at least one phase.
func (s *Schema) Validate() error {
	seenFW := map[string]bool{}
	for _, fw := range s.Frameworks {
		if fw.Name == "" {
			return fmt.Errorf("framework with empty name")
		}
		if seenFW[fw.Name] {
			return fmt.Errorf("duplicate framework %q", fw.Name)
		}
		seenFW[fw.Name] = true
		for _, cb := range fw.Callbacks {
			if cb.Name == "" {
				return fmt.Errorf("framework %q: callback with empty name", fw.Name)
			}
			if len(cb.CallChain) == 0 {
				return fmt.Errorf("framework %q callback %q: empty call chain", fw.Name, cb.Name)
			}
		}
	}
	seenMech := map[string]bool{}
	for _, m := range s.AsyncMechanisms {
		if m.Name == "" {
			return fmt.Errorf("async mechanism with empty name")
		}
		if seenMech[m.Name] {
			return fmt.Errorf("duplicate async mechanism %q", m.Name)
		}
		seenMech[m.Name] = true
		if len(m.CallChain) == 0 {
			return fmt.Errorf("async mechanism %q: empty call chain", m.Name)
		}
		if len(m.BindFuncs) == 0 {
			return fmt.Errorf("async mechanism %q: no bind operations", m.Name)
		}
	}
	for _, c := range s.Composites {
		if len(c.Phases) == 0 {
			return fmt.Errorf("composite %q: no phases", c.Name)
		}
	}
	for _, cs := range s.Curated {
		if cs.Thinking == "" || cs.Answer == "" {
			return fmt.Errorf("curated sample %q: missing thinking or answer", cs.ID)
		}
	}
	return nil
}
