package move_player

// MovePlayerRequest HTTP request model
type MovePlayerRequest struct {
	FromTeeTimeID int64 `json:"fromTeeTimeId"`
	ToTeeTimeID   int64 `json:"toTeeTimeId"`
	PlayerID      int64 `json:"playerId"`
}
