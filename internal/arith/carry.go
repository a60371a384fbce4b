package arith

// PropagateAdd adds v into seq[i] and ripples the carry toward index 0. It
// returns true when the carry ran past index 0, meaning the value wrapped
// around 2^N.
func PropagateAdd[W Word](seq []W, i int, v W) (overflow bool) {
	carry := AddWord(&seq[i], v)
	for carry {
		i--
		if i < 0 {
			return true
		}
		carry = AddWord(&seq[i], 1)
	}
	return false
}

// PropagateSub subtracts v from seq[i] and ripples the borrow toward index 0.
// It returns true when the borrow ran past index 0.
func PropagateSub[W Word](seq []W, i int, v W) (underflow bool) {
	borrow := SubWord(&seq[i], v)
	for borrow {
		i--
		if i < 0 {
			return true
		}
		borrow = SubWord(&seq[i], 1)
	}
	return false
}
