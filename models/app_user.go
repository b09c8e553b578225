package models

import "time"

type AppUser struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Password  string    `json:"password,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *AppUser) RecordID() int64 { return u.ID }

func (u *AppUser) SetRecordID(id int64) { u.ID = id }

func (u *AppUser) RecordCreatedAt() time.Time { return u.CreatedAt }

func (u *AppUser) SetRecordCreatedAt(t time.Time) { u.CreatedAt = t }
