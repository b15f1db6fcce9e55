package domain

// User is a shop-owner account as returned by the auth endpoints.
// Shop is the owned shop, embedded by login/register responses and fetched
// lazily via the my-shop endpoint otherwise.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
	Shop  *Shop  `json:"shop,omitempty"`
}

// Clone returns a deep copy so store snapshots never alias internal state.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	out := *u
	if u.Shop != nil {
		shop := *u.Shop
		shop.Categories = append([]string(nil), u.Shop.Categories...)
		if u.Shop.WorkingHours != nil {
			hours := make(map[string]string, len(u.Shop.WorkingHours))
			for k, v := range u.Shop.WorkingHours {
				hours[k] = v
			}
			shop.WorkingHours = hours
		}
		out.Shop = &shop
	}
	return &out
}
