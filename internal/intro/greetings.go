// Package intro plays the greeting sequence shown before the form.
package intro

// Greeting is one frame of the intro: a word and the language it is in.
type Greeting struct {
	Text     string
	Language string
}

var greetings = []Greeting{
	{"Welcome", "English"},
	{"नमस्ते", "Hindi"},
	{"Hola", "Spanish"},
	{"Bonjour", "French"},
	{"Guten Tag", "German"},
	{"Ciao", "Italian"},
	{"こんにちは", "Japanese"},
	{"你好", "Chinese"},
	{"السلام عليكم", "Arabic"},
	{"Olá", "Portuguese"},
	{"Привет", "Russian"},
	{"안녕하세요", "Korean"},
	{"Sawubona", "Zulu"},
	{"Hej", "Swedish"},
}

// Greetings returns a copy of the built-in sequence.
func Greetings() []Greeting {
	out := make([]Greeting, len(greetings))
	copy(out, greetings)
	return out
}
