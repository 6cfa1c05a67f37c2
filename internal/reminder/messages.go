package reminder

// builtinMessages is the pool used when no custom message is configured.
var builtinMessages = []string{
	"Time for a glass of water!",
	"Stay hydrated, drink some water.",
	"Your body needs water. Take a sip!",
	"Water break! A glass now keeps the headache away.",
	"Hydration check: when did you last drink water?",
	"Grab some water and stretch for a minute.",
}
