package models

import "time"

// Lead pipeline stages.
const (
	LeadStageNew       = "new"
	LeadStageContacted = "contacted"
	LeadStageQualified = "qualified"
	LeadStageWon       = "won"
	LeadStageLost      = "lost"
)

// Lead is a sales prospect in the CRM pipeline.
type Lead struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Company   string    `bson:"company,omitempty" json:"company,omitempty"`
	Email     string    `bson:"email" json:"email"`
	Phone     string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Source    string    `bson:"source,omitempty" json:"source,omitempty"`
	Stage     string    `bson:"stage" json:"stage"`
	Notes     string    `bson:"notes,omitempty" json:"notes,omitempty"`
	OwnerID   string    `bson:"owner_id,omitempty" json:"ownerId,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
