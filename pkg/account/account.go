package account

// Profile is the in-memory user snapshot managed through the simulated
// account gateway.
type Profile struct {
	FullName      string            `json:"fullName"`
	Email         string            `json:"email"`
	Phone         string            `json:"phone"`
	Notifications NotificationPrefs `json:"notifications"`
	Preferences   Preferences       `json:"preferences"`
}

type NotificationPrefs struct {
	Email bool `json:"email"`
	Push  bool `json:"push"`
}

type Preferences struct {
	TimeZone string `json:"timeZone"`
	Language string `json:"language"`
}

// DefaultProfile is the seed snapshot used until a real identity
// provider replaces the simulation.
func DefaultProfile() Profile {
	return Profile{
		FullName: "Alex Doe",
		Email:    "alex.doe@example.com",
		Phone:    "555-123-4567",
		Notifications: NotificationPrefs{
			Email: true,
			Push:  false,
		},
		Preferences: Preferences{
			TimeZone: "America/New_York",
			Language: "en",
		},
	}
}

type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Languages returns the selectable interface languages.
func Languages() []Option {
	return []Option{
		{Value: "en", Label: "English"},
		{Value: "es", Label: "Español (Spanish)"},
		{Value: "fr", Label: "Français (French)"},
		{Value: "de", Label: "Deutsch (German)"},
		{Value: "ro", Label: "Română (Romanian)"},
	}
}

// TimeZones returns the selectable time zones.
func TimeZones() []Option {
	return []Option{
		{Value: "Etc/GMT+12", Label: "(GMT-12:00) International Date Line West"},
		{Value: "Pacific/Midway", Label: "(GMT-11:00) Midway Island, Samoa"},
		{Value: "Pacific/Honolulu", Label: "(GMT-10:00) Hawaii"},
		{Value: "America/Anchorage", Label: "(GMT-09:00) Alaska"},
		{Value: "America/Los_Angeles", Label: "(GMT-08:00) Pacific Time (US & Canada)"},
		{Value: "America/Denver", Label: "(GMT-07:00) Mountain Time (US & Canada)"},
		{Value: "America/Chicago", Label: "(GMT-06:00) Central Time (US & Canada)"},
		{Value: "America/New_York", Label: "(GMT-05:00) Eastern Time (US & Canada)"},
		{Value: "America/Caracas", Label: "(GMT-04:30) Caracas"},
		{Value: "America/Halifax", Label: "(GMT-04:00) Atlantic Time (Canada)"},
		{Value: "America/Sao_Paulo", Label: "(GMT-03:00) Brasilia"},
		{Value: "Atlantic/South_Georgia", Label: "(GMT-02:00) Mid-Atlantic"},
		{Value: "Atlantic/Azores", Label: "(GMT-01:00) Azores"},
		{Value: "Europe/London", Label: "(GMT+00:00) London, Lisbon"},
		{Value: "Europe/Paris", Label: "(GMT+01:00) Brussels, Copenhagen, Madrid, Paris"},
		{Value: "Europe/Bucharest", Label: "(GMT+02:00) Bucharest, Athens, Helsinki"},
		{Value: "Europe/Moscow", Label: "(GMT+03:00) Moscow, St. Petersburg, Volgograd"},
		{Value: "Asia/Dubai", Label: "(GMT+04:00) Abu Dhabi, Muscat"},
		{Value: "Asia/Karachi", Label: "(GMT+05:00) Islamabad, Karachi, Tashkent"},
		{Value: "Asia/Dhaka", Label: "(GMT+06:00) Astana, Dhaka"},
		{Value: "Asia/Bangkok", Label: "(GMT+07:00) Bangkok, Hanoi, Jakarta"},
		{Value: "Asia/Hong_Kong", Label: "(GMT+08:00) Beijing, Hong Kong, Singapore"},
		{Value: "Asia/Tokyo", Label: "(GMT+09:00) Osaka, Sapporo, Tokyo"},
		{Value: "Australia/Sydney", Label: "(GMT+10:00) Canberra, Melbourne, Sydney"},
		{Value: "Pacific/Noumea", Label: "(GMT+11:00) Magadan, Solomon Is., New Caledonia"},
		{Value: "Pacific/Auckland", Label: "(GMT+12:00) Auckland, Wellington"},
		{Value: "Pacific/Fiji", Label: "(GMT+13:00) Fiji, Kamchatka, Marshall Is."},
	}
}
