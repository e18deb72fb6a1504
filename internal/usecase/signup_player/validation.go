package signup_player

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-TeeTimeService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.GroupID <= 0 {
		return fmt.Errorf("%w: groupID must be positive", ErrInvalidInput)
	}
	if req.EventID <= 0 {
		return fmt.Errorf("%w: eventID must be positive", ErrInvalidInput)
	}
	if req.TeeTimeID <= 0 {
		return fmt.Errorf("%w: teeTimeID must be positive", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name required", ErrInvalidInput)
	}
	if len(req.Name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name too long", ErrInvalidInput)
	}
	email := strings.TrimSpace(req.Email)
	if email == "" {
		return fmt.Errorf("%w: email required", ErrInvalidInput)
	}
	if !strings.Contains(email, "@") {
		return fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}
	return nil
}
