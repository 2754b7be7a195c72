package maze

import (
	"errors"
	"testing"
)

func TestDirectionCheckExitRoom(t *testing.T) {
	// Exit north behind a standing north wall: the exit wins anyway.
	room := NewRoom(DirNorth, true, false, true, true)

	tests := []struct {
		direction Direction
		expected  RoomBorder
	}{
		{DirNorth, BorderExit},
		{DirEast, BorderRoom},
		{DirSouth, BorderWall},
		{DirWest, BorderWall},
	}

	for _, tt := range tests {
		got, err := room.DirectionCheck(tt.direction)
		if err != nil {
			t.Fatalf("DirectionCheck(%v) returned error: %v", tt.direction, err)
		}
		if got != tt.expected {
			t.Errorf("DirectionCheck(%v) = %v, want %v", tt.direction, got, tt.expected)
		}
	}
}

func TestDirectionCheckNoExit(t *testing.T) {
	room := NewRoom(DirNone, true, true, false, false)

	tests := []struct {
		direction Direction
		expected  RoomBorder
	}{
		{DirNorth, BorderWall},
		{DirEast, BorderWall},
		{DirSouth, BorderRoom},
		{DirWest, BorderRoom},
	}

	for _, tt := range tests {
		got, err := room.DirectionCheck(tt.direction)
		if err != nil {
			t.Fatalf("DirectionCheck(%v) returned error: %v", tt.direction, err)
		}
		if got != tt.expected {
			t.Errorf("DirectionCheck(%v) = %v, want %v", tt.direction, got, tt.expected)
		}
	}
}

func TestDirectionCheckNone(t *testing.T) {
	rooms := []Room{
		NewRoom(DirNone, true, true, true, true),
		NewRoom(DirNorth, false, false, false, false),
		NewRoom(DirWest, true, false, true, false),
	}

	for i := range rooms {
		_, err := rooms[i].DirectionCheck(DirNone)
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("room %d: DirectionCheck(DirNone) error = %v, want ErrInvalidArgument", i, err)
		}
	}
}

func TestRoomInhabitantAndItem(t *testing.T) {
	room := NewRoom(DirNone, true, true, true, true)

	if room.Inhabitant() != InhabitantNone {
		t.Errorf("new room inhabitant = %v, want InhabitantNone", room.Inhabitant())
	}
	if room.Item() != ItemNone {
		t.Errorf("new room item = %v, want ItemNone", room.Item())
	}

	room.SetInhabitant(InhabitantMinotaur)
	if room.Inhabitant() != InhabitantMinotaur {
		t.Errorf("inhabitant after set = %v, want InhabitantMinotaur", room.Inhabitant())
	}

	room.SetItem(ItemTreasure)
	if room.Item() != ItemTreasure {
		t.Errorf("item after set = %v, want ItemTreasure", room.Item())
	}
}

func TestDirectionOpposite(t *testing.T) {
	tests := []struct {
		direction Direction
		expected  Direction
	}{
		{DirNorth, DirSouth},
		{DirEast, DirWest},
		{DirSouth, DirNorth},
		{DirWest, DirEast},
		{DirNone, DirNone},
	}

	for _, tt := range tests {
		if got := tt.direction.Opposite(); got != tt.expected {
			t.Errorf("%v.Opposite() = %v, want %v", tt.direction, got, tt.expected)
		}
	}
}

func TestCoordinateStep(t *testing.T) {
	c := Coordinate{X: 3, Y: 5}

	tests := []struct {
		direction Direction
		expected  Coordinate
	}{
		{DirNorth, Coordinate{X: 3, Y: 4}},
		{DirEast, Coordinate{X: 4, Y: 5}},
		{DirSouth, Coordinate{X: 3, Y: 6}},
		{DirWest, Coordinate{X: 2, Y: 5}},
		{DirNone, Coordinate{X: 3, Y: 5}},
	}

	for _, tt := range tests {
		if got := c.Step(tt.direction); got != tt.expected {
			t.Errorf("%v.Step(%v) = %v, want %v", c, tt.direction, got, tt.expected)
		}
	}
}
