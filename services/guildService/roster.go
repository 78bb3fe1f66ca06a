package guildService

// DefaultRoster is the competition's preset member list. Secrets are
// shared phrases for the advisory tip gate, not credentials.
var DefaultRoster = []struct {
	Name   string
	Secret string
}{
	{Name: "Doon", Secret: "admin"},
	{Name: "Son of Doon", Secret: "son"},
	{Name: "Steph No. 1", Secret: "steph"},
	{Name: "Mel Meninga", Secret: "mal"},
	{Name: "Dora the Explorer", Secret: "map"},
	{Name: "Sparrow", Secret: "jack"},
	{Name: "Colin", Secret: "col"},
	{Name: "Winthrop", Secret: "win"},
	{Name: "Weekend at Bernies", Secret: "bernie"},
	{Name: "Liv love laugh", Secret: "laugh"},
}
