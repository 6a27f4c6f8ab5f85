package model

import "time"

type ServiceType string

const (
	ServiceTypeGraphicDesign      ServiceType = "graphic_design"
	ServiceTypeArticleWriting     ServiceType = "article_writing"
	ServiceTypeTranslation        ServiceType = "translation"
	ServiceTypeVideoEditing       ServiceType = "video_editing"
	ServiceTypeWebsiteDevelopment ServiceType = "website_development"
)

var serviceTypeNames = map[ServiceType]string{
	ServiceTypeGraphicDesign:      "Desain Grafis",
	ServiceTypeArticleWriting:     "Penulisan Artikel",
	ServiceTypeTranslation:        "Penerjemahan",
	ServiceTypeVideoEditing:       "Edit Video",
	ServiceTypeWebsiteDevelopment: "Pembuatan Website",
}

func (t ServiceType) Known() bool {
	_, ok := serviceTypeNames[t]
	return ok
}

// DisplayName returns the Indonesian label; unrecognized codes fall back to the
// raw code so a catalog row with a new type still renders.
func (t ServiceType) DisplayName() string {
	if name, ok := serviceTypeNames[t]; ok {
		return name
	}
	return string(t)
}

type OrderStatus string

const (
	OrderStatusNew        OrderStatus = "new"
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

var orderStatusNames = map[OrderStatus]string{
	OrderStatusNew:        "Baru",
	OrderStatusInProgress: "Diproses",
	OrderStatusCompleted:  "Selesai",
	OrderStatusCancelled:  "Dibatalkan",
}

func (s OrderStatus) Known() bool {
	_, ok := orderStatusNames[s]
	return ok
}

func (s OrderStatus) DisplayName() string {
	if name, ok := orderStatusNames[s]; ok {
		return name
	}
	return string(s)
}

// OrderStatuses lists the known statuses in lifecycle order.
func OrderStatuses() []OrderStatus {
	return []OrderStatus{OrderStatusNew, OrderStatusInProgress, OrderStatusCompleted, OrderStatusCancelled}
}

// Service is a catalog offering. StartingPrice is in the smallest currency
// subunit (cents-equivalent).
type Service struct {
	ID               string      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name             string      `gorm:"type:varchar(255);not null" json:"name"`
	Description      string      `gorm:"type:text" json:"description"`
	ServiceType      ServiceType `gorm:"type:varchar(64);index;not null" json:"service_type"`
	StartingPrice    int64       `gorm:"not null" json:"starting_price"`
	DeliveryTimeDays int         `gorm:"not null" json:"delivery_time_days"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Order is a customer request against exactly one Service. Optional text
// columns are pointers so "absent" and "explicitly empty" stay distinct on the
// wire.
type Order struct {
	ID             string      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	TelegramUserID string      `gorm:"type:varchar(64);index;not null" json:"telegram_user_id"`
	CustomerName   string      `gorm:"type:varchar(255);not null" json:"customer_name"`
	ContactInfo    string      `gorm:"type:varchar(255);not null" json:"contact_info"`
	ServiceID      string      `gorm:"type:uuid;index;not null" json:"service_id"`
	Deadline       *time.Time  `gorm:"type:date" json:"deadline,omitempty"`
	Notes          *string     `gorm:"type:text" json:"notes,omitempty"`
	Status         OrderStatus `gorm:"type:varchar(32);index;not null" json:"status"`
	AdminNotes     *string     `gorm:"type:text" json:"admin_notes,omitempty"`
	ResultLink     *string     `gorm:"type:text" json:"result_link,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Service *Service `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
}
