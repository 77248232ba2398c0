package notify

import "testing"

func TestSetThenGet(t *testing.T) {
	s := NewSetting("EnableRumble", true)
	if !s.Get() {
		t.Fatal("expected initial value true")
	}
	if !s.Set(false) {
		t.Fatal("expected Set to report a change")
	}
	if s.Get() {
		t.Fatal("expected value false after Set")
	}
	if s.Name() != "EnableRumble" {
		t.Fatalf("unexpected name: %q", s.Name())
	}
}

func TestSetSameValueDoesNotNotify(t *testing.T) {
	s := NewSetting("LEDBarMode", 1)
	calls := 0
	s.Subscribe(func(Change[int]) { calls++ })

	if s.Set(1) {
		t.Fatal("expected no change for equal value")
	}
	if calls != 0 {
		t.Fatalf("expected no notification, got %d", calls)
	}

	s.Set(2)
	s.Set(2)
	if calls != 1 {
		t.Fatalf("expected exactly one notification, got %d", calls)
	}
}

func TestSubscribersReceiveOldAndNewInOrder(t *testing.T) {
	s := NewSetting("MuteLEDMode", "Off")
	var order []string
	s.Subscribe(func(c Change[string]) {
		order = append(order, "first:"+c.Old+">"+c.New)
	})
	s.Subscribe(func(c Change[string]) {
		order = append(order, "second:"+c.Name)
	})

	s.Set("Pulse")

	if len(order) != 2 {
		t.Fatalf("expected 2 deliveries, got %v", order)
	}
	if order[0] != "first:Off>Pulse" {
		t.Fatalf("unexpected first delivery: %q", order[0])
	}
	if order[1] != "second:MuteLEDMode" {
		t.Fatalf("unexpected second delivery: %q", order[1])
	}
}

func TestCancelStopsDelivery(t *testing.T) {
	s := NewSetting("Enabled", true)
	calls := 0
	cancel := s.Subscribe(func(Change[bool]) { calls++ })

	s.Set(false)
	cancel()
	cancel()
	s.Set(true)

	if calls != 1 {
		t.Fatalf("expected 1 delivery before cancel, got %d", calls)
	}
	if s.Subscribers() != 0 {
		t.Fatalf("expected no subscribers, got %d", s.Subscribers())
	}
}

func TestSubscribeDuringDeliveryAppliesToNextSet(t *testing.T) {
	s := NewSetting("Copycat", false)
	late := 0
	s.Subscribe(func(Change[bool]) {
		s.Subscribe(func(Change[bool]) { late++ })
	})

	s.Set(true)
	if late != 0 {
		t.Fatalf("late subscriber should not see the current change, got %d", late)
	}
	s.Set(false)
	if late != 1 {
		t.Fatalf("expected late subscriber to see next change, got %d", late)
	}
}

func TestReentrantSetFromObserver(t *testing.T) {
	s := NewSetting("EnableHomeLED", true)
	var seen []bool
	s.Subscribe(func(c Change[bool]) {
		seen = append(seen, c.New)
		if !c.New {
			s.Set(true)
		}
	})

	s.Set(false)

	if !s.Get() {
		t.Fatal("expected observer to restore true")
	}
	if len(seen) != 2 || seen[0] != false || seen[1] != true {
		t.Fatalf("unexpected deliveries: %v", seen)
	}
}

func TestNilObserverIgnored(t *testing.T) {
	s := NewSetting("Enabled", true)
	cancel := s.Subscribe(nil)
	cancel()
	if s.Subscribers() != 0 {
		t.Fatalf("expected nil observer to be ignored")
	}
	s.Set(false)
}
