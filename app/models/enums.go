package models

// Role defines the possible roles of a portal user.
type Role string

const (
	RoleHomeowner     Role = "homeowner"
	RoleRenter        Role = "renter"
	RoleAdministrator Role = "administrator"
)

// PaymentStatus defines the status of a single monthly obligation.
type PaymentStatus string

const (
	PaymentUnpaid     PaymentStatus = "Unpaid"
	PaymentProcessing PaymentStatus = "Processing"
	PaymentPaid       PaymentStatus = "Paid"
)

// ModeOfPayment defines how a payment was made.
type ModeOfPayment string

const (
	ModeGCash        ModeOfPayment = "gcash"
	ModeBankTransfer ModeOfPayment = "bank_transfer"
	ModeCash         ModeOfPayment = "cash"
	ModeCheck        ModeOfPayment = "check"
)

// AnnouncementType separates plain announcements from gallery posts.
type AnnouncementType string

const (
	TypeAnnouncement AnnouncementType = "announcement"
	TypeGallery      AnnouncementType = "gallery"
)

// MonthName returns the English name for a month number 1-12.
func MonthName(month int) string {
	names := [...]string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	}
	if month < 1 || month > 12 {
		return ""
	}
	return names[month-1]
}
