package model

import "time"

const RoleAdmin = "admin"

// AdminCredential : подписанный токен администратора, нигде не хранится
type AdminCredential struct {
	Token     string
	Role      string
	ExpiresAt time.Time
}
