package controller

import "testing"

func TestStrobeHighContinuouslyReportsButtonA(t *testing.T) {
	var c Controller
	c.SetButton(ButtonA, true)
	c.Write(1) // strobe high

	for i := 0; i < 3; i++ {
		if got := c.Read() & 1; got != 1 {
			t.Errorf("read %d = %d, want 1 while strobe is held high and A is pressed", i, got)
		}
	}
}

func TestShiftOrderMatchesHardware(t *testing.T) {
	var c Controller
	c.SetButton(ButtonA, true)
	c.SetButton(ButtonRight, true)
	c.Write(1)
	c.Write(0) // latch and begin shifting

	want := []uint8{1, 0, 0, 0, 0, 0, 0, 1} // A, B, Select, Start, Up, Down, Left, Right
	for i, w := range want {
		if got := c.Read() & 1; got != w {
			t.Errorf("bit %d = %d, want %d", i, got, w)
		}
	}
}

func TestReadsPastEighthBitReturnOne(t *testing.T) {
	var c Controller
	c.Write(1)
	c.Write(0)
	for i := 0; i < 8; i++ {
		c.Read()
	}
	if got := c.Read() & 1; got != 1 {
		t.Errorf("9th read = %d, want 1", got)
	}
}
