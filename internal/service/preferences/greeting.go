package preferences

import "strings"

// Greeting greets username, or "User" when it is blank.
func Greeting(username string) string {
	name := strings.TrimSpace(username)
	if name == "" {
		name = "User"
	}
	return "Hello, " + name + "!"
}
