package safe

import "testing"

func TestCheckSampleCount(t *testing.T) {
	if err := CheckSampleCount(0); err != ErrInvalidLength {
		t.Errorf("CheckSampleCount(0) = %v, want ErrInvalidLength", err)
	}
	if err := CheckSampleCount(-1); err != ErrInvalidLength {
		t.Errorf("CheckSampleCount(-1) = %v, want ErrInvalidLength", err)
	}
	if err := CheckSampleCount(MaxSampleCount + 1); err != ErrExceedsLimit {
		t.Errorf("CheckSampleCount(over limit) = %v, want ErrExceedsLimit", err)
	}
	if err := CheckSampleCount(1024); err != nil {
		t.Errorf("CheckSampleCount(1024) = %v, want nil", err)
	}
}

func TestCheckBranchLimit(t *testing.T) {
	if err := CheckBranchLimit(0); err == nil {
		t.Error("expected error for branch limit 0")
	}
	if err := CheckBranchLimit(MaxBranchLimit + 1); err != ErrExceedsLimit {
		t.Errorf("CheckBranchLimit(over limit) = %v, want ErrExceedsLimit", err)
	}
	if err := CheckBranchLimit(8); err != nil {
		t.Errorf("CheckBranchLimit(8) = %v, want nil", err)
	}
}

func TestCheckRounds(t *testing.T) {
	for _, n := range []int{1, 2, 3, 4} {
		if err := CheckRounds(n); err != nil {
			t.Errorf("CheckRounds(%d) = %v, want nil", n, err)
		}
	}
	if err := CheckRounds(0); err == nil {
		t.Error("expected error for rounds=0")
	}
	if err := CheckRounds(5); err == nil {
		t.Error("expected error for rounds=5")
	}
}
