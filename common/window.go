package common

// Windows returns every sliding window of width n over seq, stepping one
// position at a time. A sequence shorter than n yields no windows.
func Windows(seq string, n int) []string {
	if n <= 0 || len(seq) < n {
		return nil
	}
	out := make([]string, 0, len(seq)-n+1)
	for i := 0; i+n <= len(seq); i++ {
		out = append(out, seq[i:i+n])
	}
	return out
}
