package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// assignID fills an empty primary key before insert so ids are known to the
// caller without a round trip.
func assignID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}

func (u *User) BeforeCreate(*gorm.DB) error            { assignID(&u.ID); return nil }
func (p *VeteranProfile) BeforeCreate(*gorm.DB) error  { assignID(&p.ID); return nil }
func (p *EmployerProfile) BeforeCreate(*gorm.DB) error { assignID(&p.ID); return nil }
func (j *JobPosting) BeforeCreate(*gorm.DB) error      { assignID(&j.ID); return nil }
func (a *Application) BeforeCreate(*gorm.DB) error     { assignID(&a.ID); return nil }
func (m *Message) BeforeCreate(*gorm.DB) error         { assignID(&m.ID); return nil }

// All lists every persisted model for AutoMigrate.
func All() []any {
	return []any{
		&User{},
		&VeteranProfile{},
		&EmployerProfile{},
		&JobPosting{},
		&Application{},
		&Message{},
	}
}
