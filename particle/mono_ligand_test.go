package particle

import "testing"

func TestMonoLigand_Events_Unattached(t *testing.T) {
	m := NewMonoLigand(2.0, 3.0, 5.0, 7.0)
	events := m.Events(MonoLigandState{Attached: false})

	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	want := 5.0 * 2.0 * 3.0
	if events[0].Rate != want {
		t.Errorf("rate = %v, want %v", events[0].Rate, want)
	}
	if !events[0].Target.Attached {
		t.Errorf("target should be attached")
	}
}

func TestMonoLigand_Events_Attached(t *testing.T) {
	m := NewMonoLigand(2.0, 3.0, 5.0, 7.0)
	events := m.Events(MonoLigandState{Attached: true})

	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].Rate != 7.0 {
		t.Errorf("rate = %v, want 7.0", events[0].Rate)
	}
	if events[0].Target.Attached {
		t.Errorf("target should be unattached")
	}
}

func TestMonoLigand_Initial(t *testing.T) {
	m := NewMonoLigand(1, 1, 1, 1)
	if m.Initial().Attached {
		t.Errorf("initial state should be unattached")
	}
}

func TestMonoLigand_States(t *testing.T) {
	m := NewMonoLigand(1, 1, 1, 1)
	states := m.States()
	if len(states) != 2 {
		t.Fatalf("expected 2 reachable states, got %d", len(states))
	}
}

func TestMonoLigand_IsAttached(t *testing.T) {
	if (MonoLigandState{Attached: true}).IsAttached() != true {
		t.Errorf("IsAttached should mirror the Attached field")
	}
	if (MonoLigandState{Attached: false}).IsAttached() != false {
		t.Errorf("IsAttached should mirror the Attached field")
	}
}
