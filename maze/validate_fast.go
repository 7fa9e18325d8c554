//go:build mazefast

package maze

// strictValidation is compiled out under the mazefast build tag;
// constructors accept their input unchecked.
const strictValidation = false
