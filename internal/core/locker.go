package core

type DoorState string

const (
	DoorOpen   DoorState = "OPEN"
	DoorClosed DoorState = "CLOSED"
)

type LockerStatus struct {
	Door         DoorState  `json:"door"`
	LastOpenedAt *Timestamp `json:"lastOpenedAt,omitempty"`
	Battery      *float64   `json:"battery,omitempty"`
	Temperature  *float64   `json:"temperature,omitempty"`
}

type OpenResult string

const (
	OpenResultOpened        OpenResult = "OPENED"
	OpenResultInvalidCode   OpenResult = "INVALID_CODE"
	OpenResultLocked        OpenResult = "LOCKED"
	OpenResultHardwareError OpenResult = "HARDWARE_ERROR"
)

type LockerOpenLog struct {
	ID         string     `json:"id"`
	LockerID   string     `json:"lockerId"`
	ActorID    string     `json:"actorId,omitempty"`
	Result     OpenResult `json:"result"`
	OccurredAt Timestamp  `json:"occurredAt"`
	IP         string     `json:"ip,omitempty"`
}

type LockerOpenResponse struct {
	Result   OpenResult `json:"result"`
	OpenedAt *Timestamp `json:"openedAt,omitempty"`
}

type CodeValidation struct {
	Valid     bool       `json:"valid"`
	ItemID    string     `json:"itemId,omitempty"`
	ExpiresAt *Timestamp `json:"expiresAt,omitempty"`
}

type LockerCode struct {
	Code string `json:"code"`
}
