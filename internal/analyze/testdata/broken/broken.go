package broken

//lit:vec
type Broken struct {
