package vlm

// Test bridge for unexported kernels.
var WhavForTest = whav
