package particle

import "testing"

func TestInterfering_Initial(t *testing.T) {
	m := NewInterfering(5, 1, 1, 1, 1, 0.5, 1)
	s := m.Initial()
	if s.HasEntered || s.HasExited || s.AttachedLigands != 0 {
		t.Errorf("initial state should be unentered, unexited, with no bound ligands, got %+v", s)
	}
}

func TestInterfering_Events_Terminal(t *testing.T) {
	m := NewInterfering(5, 1, 1, 1, 1, 0.5, 1)

	entered := InterferingState{HasEntered: true}
	events := m.Events(entered)
	if len(events) != 1 || events[0].Rate != 0 || events[0].Target != entered {
		t.Errorf("entered state should return a single zero-rate self-loop, got %+v", events)
	}

	exited := InterferingState{HasExited: true}
	events = m.Events(exited)
	if len(events) != 1 || events[0].Rate != 0 || events[0].Target != exited {
		t.Errorf("exited state should return a single zero-rate self-loop, got %+v", events)
	}
}

func TestInterfering_Events_NoLigandsAttachedOnlyBinds(t *testing.T) {
	m := NewInterfering(5, 1, 2, 3, 4, 0.5, 7)
	events := m.Events(InterferingState{})

	if len(events) != 1 {
		t.Fatalf("with no ligands attached, only binding is possible, got %d events", len(events))
	}
	// free_ligands(5) * attach_rate(2) * receptor_density(1) * initial_collision_factor(7)
	want := 5.0 * 2.0 * 1.0 * 7.0
	if events[0].Rate != want {
		t.Errorf("rate = %v, want %v", events[0].Rate, want)
	}
	if events[0].Target.AttachedLigands != 1 {
		t.Errorf("binding should increment AttachedLigands")
	}
}

func TestInterfering_Events_WithLigandsAttached(t *testing.T) {
	m := NewInterfering(5, 1, 2, 3, 4, 0.5, 7)
	events := m.Events(InterferingState{AttachedLigands: 2})

	if len(events) != 3 {
		t.Fatalf("expected entering, unbind, and bind events, got %d", len(events))
	}

	// entering: attached(2) * enter_rate(4) * obstruction^(attached-1) = 2*4*0.5^1 = 4
	if events[0].Rate != 4.0 {
		t.Errorf("entering rate = %v, want 4.0", events[0].Rate)
	}
	if !events[0].Target.HasEntered {
		t.Errorf("entering event should set HasEntered")
	}

	// unbind: attached(2) * deattach_rate(3) = 6
	if events[1].Rate != 6.0 {
		t.Errorf("unbind rate = %v, want 6.0", events[1].Rate)
	}
	if events[1].Target.AttachedLigands != 1 {
		t.Errorf("unbind from 2 should leave 1 attached")
	}

	// bind: free_ligands(3) * attach_rate(2) * receptor_density(1), no initial-collision scaling
	if events[2].Rate != 6.0 {
		t.Errorf("bind rate = %v, want 6.0", events[2].Rate)
	}
}

func TestInterfering_Unbind_LastLigandExits(t *testing.T) {
	m := NewInterfering(5, 1, 2, 3, 4, 0.5, 7)
	events := m.Events(InterferingState{AttachedLigands: 1})

	var unbind Event[InterferingState]
	found := false
	for _, e := range events {
		if e.Target.AttachedLigands == 0 && !e.Target.HasEntered {
			unbind = e
			found = true
		}
	}
	if !found {
		t.Fatal("expected an unbind event from the single attached ligand")
	}
	if !unbind.Target.HasExited {
		t.Errorf("unbinding the last ligand should set HasExited, got %+v", unbind.Target)
	}
}

// S3-style check: states never violate ¬(HasEntered ∧ HasExited).
func TestInterfering_NeverBothEnteredAndExited(t *testing.T) {
	m := NewInterfering(5, 1, 1, 1, 1, 0.5, 1)
	for _, s := range m.States() {
		if s.HasEntered && s.HasExited {
			t.Errorf("state %+v violates ¬(HasEntered ∧ HasExited)", s)
		}
	}
}
