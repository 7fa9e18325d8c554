//go:build !mazefast

package maze

// strictValidation enables range checks in constructors. Build with
// -tags mazefast to compile them out on targets where every input is
// already trusted.
const strictValidation = true
