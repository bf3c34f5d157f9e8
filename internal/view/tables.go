package view

var roomGraphics = map[int]int{
	2:  25,
	3:  27,
	4:  29,
	5:  28,
	6:  30,
	8:  34,
	9:  35,
	10: 33,
	11: 32,
	12: 31,
	13: 26,
	14: 36,
	15: 37,
	16: 38,
}

var trapGraphics = map[int]int{
	1: 5,
	2: 9,
	3: 7,
	4: 8,
	5: 6,
	6: 10,
}

var doorGraphics = map[int]int{
	1: 11,
	2: 12,
	3: 13,
	4: 14,
}

// RoomGraphic returns the placement pointer for a room kind. Kinds that
// cannot be placed map to GraphicInvisible.
func RoomGraphic(kind int) int {
	return roomGraphics[kind]
}

// TrapGraphic returns the placement pointer for a trap model.
func TrapGraphic(model int) int {
	return trapGraphics[model]
}

// DoorGraphic returns the placement pointer for a door model.
func DoorGraphic(model int) int {
	return doorGraphics[model]
}
