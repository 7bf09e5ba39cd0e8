package entity

import "github.com/shopspring/decimal"

type ProgressStage struct {
	Stage       StageType `json:"stage" firestore:"stage"`
	Title       string    `json:"title" firestore:"title"`
	Completed   bool      `json:"completed" firestore:"completed"`
	Date        string    `json:"date,omitempty" firestore:"date,omitempty"`
	CompletedBy string    `json:"completed_by,omitempty" firestore:"completedBy,omitempty"`
}

type Order struct {
	ID              string          `json:"id" firestore:"id"`
	Title           string          `json:"title" firestore:"title"`
	RenterEmail     string          `json:"renter_email" firestore:"renterEmail"`
	LandlordEmail   string          `json:"landlord_email" firestore:"landlordEmail"`
	PropertyAddress string          `json:"property_address" firestore:"propertyAddress"`
	DepositAmount   decimal.Decimal `json:"deposit_amount" firestore:"-"`
	Description     string          `json:"description,omitempty" firestore:"description,omitempty"`
	Status          OrderStatus     `json:"status" firestore:"status"`
	CreatedBy       string          `json:"created_by" firestore:"createdBy"`
	ProgressStages  []ProgressStage `json:"progress_stages" firestore:"progressStages"`

	// Joined from the chat_rooms collection at read time, never persisted
	// as part of the order document.
	ChatRoom *ChatRoom `json:"chat_room,omitempty" firestore:"-"`

	CreatedAt string `json:"created_at" firestore:"createdAt"`
	UpdatedAt string `json:"updated_at" firestore:"updatedAt"`
}

// DefaultProgressStages builds the canonical 5-stage template for a new
// order: the first stage is completed at creation time, the rest are open.
func DefaultProgressStages(now string) []ProgressStage {
	catalog := []struct {
		stage StageType
		title string
	}{
		{StageOrderCreated, "Order Created"},
		{StageRenterReview, "Renter Review"},
		{StageLandlordReview, "Landlord Review"},
		{StageDepositHeld, "Deposit Held"},
		{StageCompleted, "Completed"},
	}

	stages := make([]ProgressStage, 0, len(catalog))
	for _, c := range catalog {
		stage := ProgressStage{
			Stage:     c.stage,
			Title:     c.title,
			Completed: c.stage == StageOrderCreated,
		}
		if stage.Completed {
			stage.Date = now
		}
		stages = append(stages, stage)
	}
	return stages
}
