package model

// EventType identifies a notification emitted by the engine
type EventType string

const (
	EventGameBegan    EventType = "game_began"
	EventGameEnded    EventType = "game_ended"
	EventLevelUp      EventType = "level_up"
	EventShapeDropped EventType = "shape_dropped"
	EventShapeLanded  EventType = "shape_landed"
	EventShapeMoved   EventType = "shape_moved"
	EventLinesCleared EventType = "lines_cleared"
)
