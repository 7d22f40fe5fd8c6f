package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Role gates which protected routes a session may reach.
type Role string

const (
	RoleInvestor   Role = "investor"
	RoleManagement Role = "management"
)

func (r Role) Valid() bool {
	return r == RoleInvestor || r == RoleManagement
}

// Session ties the identity record a login was created from to the app role
// it was granted. Its durable form is the identity object itself with an
// appRole key appended, so the identity fields stay flat.
type Session struct {
	AppRole  Role
	Identity json.RawMessage
}

// NewSession tags an identity record (an Investor or a ManagementAdmin) with
// the given role. The identity is never validated here; callers must have
// authenticated it first.
func NewSession(identity any, role Role) (*Session, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("session: unknown role %q", role)
	}
	raw, err := json.Marshal(identity)
	if err != nil {
		return nil, err
	}
	return &Session{AppRole: role, Identity: raw}, nil
}

func (s *Session) MarshalJSON() ([]byte, error) {
	fields := map[string]json.RawMessage{}
	if len(s.Identity) > 0 {
		if err := json.Unmarshal(s.Identity, &fields); err != nil {
			return nil, err
		}
	}
	tag, err := json.Marshal(s.AppRole)
	if err != nil {
		return nil, err
	}
	fields["appRole"] = tag
	return json.Marshal(fields)
}

func (s *Session) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	tag, ok := fields["appRole"]
	if !ok {
		return errors.New("session: missing appRole")
	}
	var role Role
	if err := json.Unmarshal(tag, &role); err != nil {
		return err
	}
	if !role.Valid() {
		return fmt.Errorf("session: unknown role %q", role)
	}
	delete(fields, "appRole")
	identity, err := json.Marshal(fields)
	if err != nil {
		return err
	}
	s.AppRole = role
	s.Identity = identity
	return nil
}

// Investor returns the identity as an Investor when the session holds the
// investor role.
func (s *Session) Investor() (*Investor, bool) {
	if s == nil || s.AppRole != RoleInvestor {
		return nil, false
	}
	var inv Investor
	if err := json.Unmarshal(s.Identity, &inv); err != nil {
		return nil, false
	}
	return &inv, true
}

// ManagementAdmin returns the identity as a ManagementAdmin when the session
// holds the management role.
func (s *Session) ManagementAdmin() (*ManagementAdmin, bool) {
	if s == nil || s.AppRole != RoleManagement {
		return nil, false
	}
	var admin ManagementAdmin
	if err := json.Unmarshal(s.Identity, &admin); err != nil {
		return nil, false
	}
	return &admin, true
}

// Username extracts the identity's username field, if present.
func (s *Session) Username() string {
	if s == nil {
		return ""
	}
	var probe struct {
		Username string `json:"username"`
	}
	if err := json.Unmarshal(s.Identity, &probe); err != nil {
		return ""
	}
	return probe.Username
}

// DisplayName prefers the investor's full name, falling back to the username.
func (s *Session) DisplayName() string {
	if s == nil {
		return ""
	}
	var probe struct {
		FullName string `json:"fullName"`
		Username string `json:"username"`
	}
	if err := json.Unmarshal(s.Identity, &probe); err != nil {
		return ""
	}
	if probe.FullName != "" {
		return probe.FullName
	}
	return probe.Username
}
