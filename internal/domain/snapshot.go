package domain

// Snapshot is the complete persisted object graph, loaded wholesale at start
// and replaced wholesale on every mutation. Field names match the JSON blob
// the original application persisted, so existing data loads unchanged.
type Snapshot struct {
	Users           []User            `json:"users"`
	Credentials     map[string]string `json:"credentials"`
	Clubs           []Club            `json:"clubs"`
	Events          []Event           `json:"events"`
	ClubMemberships []ClubMembership  `json:"clubMemberships"`
	JoinRequests    []JoinRequest     `json:"joinRequests"`
	CustomRoles     []CustomRole      `json:"customRoles"`
}

// Clone returns a deep copy. Mutations are applied to a clone which then
// replaces the live snapshot, so readers never observe a half-applied change.
func (s *Snapshot) Clone() *Snapshot {
	if s == nil {
		return nil
	}
	out := &Snapshot{
		Users:           append([]User(nil), s.Users...),
		Credentials:     make(map[string]string, len(s.Credentials)),
		Clubs:           append([]Club(nil), s.Clubs...),
		Events:          append([]Event(nil), s.Events...),
		ClubMemberships: append([]ClubMembership(nil), s.ClubMemberships...),
		JoinRequests:    append([]JoinRequest(nil), s.JoinRequests...),
		CustomRoles:     append([]CustomRole(nil), s.CustomRoles...),
	}
	for email, secret := range s.Credentials {
		out.Credentials[email] = secret
	}
	for i := range out.Events {
		out.Events[i].RegisteredUsers = append([]UserID(nil), s.Events[i].RegisteredUsers...)
	}
	return out
}
