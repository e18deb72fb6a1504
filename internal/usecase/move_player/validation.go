package move_player

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.GroupID <= 0 {
		return fmt.Errorf("%w: groupID must be positive", ErrInvalidInput)
	}
	if req.EventID <= 0 {
		return fmt.Errorf("%w: eventID must be positive", ErrInvalidInput)
	}
	if req.FromTeeTimeID <= 0 {
		return fmt.Errorf("%w: fromTeeTimeID must be positive", ErrInvalidInput)
	}
	if req.ToTeeTimeID <= 0 {
		return fmt.Errorf("%w: toTeeTimeID must be positive", ErrInvalidInput)
	}
	if req.PlayerID <= 0 {
		return fmt.Errorf("%w: playerID must be positive", ErrInvalidInput)
	}
	if req.FromTeeTimeID == req.ToTeeTimeID {
		return fmt.Errorf("%w: source and destination tee times are the same", ErrInvalidInput)
	}
	return nil
}
