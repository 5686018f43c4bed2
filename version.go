package sdunit

// Version is the current version of the go-sdunit library
const Version = "1.0.0"
