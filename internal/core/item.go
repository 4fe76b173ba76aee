package core

type ItemStatus string

const (
	ItemStored   ItemStatus = "보관"
	ItemReserved ItemStatus = "예약"
	ItemFound    ItemStatus = "찾음"
)

// ItemStatuses lists all statuses in display order.
var ItemStatuses = []ItemStatus{ItemStored, ItemReserved, ItemFound}

func (s ItemStatus) Valid() bool {
	for _, v := range ItemStatuses {
		if v == s {
			return true
		}
	}
	return false
}

type Tag struct {
	ID   int    `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

type Item struct {
	ID           int        `json:"id"`
	PhotoURL     string     `json:"photo_url"`
	Location     string     `json:"location"`
	Status       ItemStatus `json:"status"`
	RegisteredAt Timestamp  `json:"registered_at"`
	Description  string     `json:"description,omitempty"`
	Tags         []Tag      `json:"tags"`
}

// TagNames returns the names of all tags of the item.
func (i Item) TagNames() []string {
	names := make([]string, 0, len(i.Tags))
	for _, t := range i.Tags {
		names = append(names, t.Name)
	}
	return names
}

// ItemUpdate is a partial update, nil fields are not sent.
type ItemUpdate struct {
	PhotoURL    *string     `json:"photo_url,omitempty" yaml:"photo_url"`
	Location    *string     `json:"location,omitempty" yaml:"location"`
	Status      *ItemStatus `json:"status,omitempty" yaml:"status"`
	Description *string     `json:"description,omitempty" yaml:"description"`
	Tags        []int       `json:"tags,omitempty" yaml:"tags"`
}

// ItemCreate is the payload of the public item creation endpoint.
type ItemCreate struct {
	PhotoURL    string     `json:"photo_url" yaml:"photo_url"`
	Location    string     `json:"location" yaml:"location"`
	Status      ItemStatus `json:"status,omitempty" yaml:"status"`
	Description string     `json:"description,omitempty" yaml:"description"`
	Tags        []int      `json:"tags,omitempty" yaml:"tags"`
}

const ManualRegisterDevice = "ManualRegister"

// ItemRegistration is the payload of the admin registration endpoint.
type ItemRegistration struct {
	PhotoURL    string `json:"photo_url" yaml:"photo_url"`
	DeviceName  string `json:"device_name" yaml:"device_name"`
	Location    string `json:"location" yaml:"location"`
	Description string `json:"description" yaml:"description"`
	Tags        []int  `json:"tags" yaml:"tags"`
}
