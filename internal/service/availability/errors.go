package availability

import "errors"

var (
	// ErrInvalidWindow возвращается, когда окно аренды нарушает start < end или без конструкции
	ErrInvalidWindow = errors.New("availability: invalid allocation window")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("availability: internal error")
)
