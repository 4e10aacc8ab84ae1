package domain

import "testing"

func answersFromMask(mask int) Answers {
	var a Answers
	for i := range QuestionCount {
		a[i] = mask&(1<<i) != 0
	}
	return a
}

func answersWith(indices ...int) Answers {
	var a Answers
	for _, i := range indices {
		a[i] = true
	}
	return a
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name         string
		answers      Answers
		wantScore    int
		wantFlags    bool
		wantCategory Category
	}{
		{"all false", Answers{}, 0, false, CategoryCritical},
		{"two positives", answersWith(0, 3), 2, false, CategoryCritical},
		{"three positives", answersWith(0, 1, 2), 3, false, CategoryOnHold},
		{"six positives", answersWith(0, 1, 2, 3, 4, 5), 6, false, CategoryOnHold},
		{"seven positives", answersWith(0, 1, 2, 3, 4, 5, 6), 7, false, CategorySafe},
		{"all positives", answersWith(0, 1, 2, 3, 4, 5, 6, 7, 8), 9, false, CategorySafe},
		{"all positives with one red flag", answersWith(0, 1, 2, 3, 4, 5, 6, 7, 8, 9), -1, true, CategoryCritical},
		{"only red flags", answersWith(9, 10, 11), -10, true, CategoryCritical},
		{"last red flag only", answersWith(11), -10, true, CategoryCritical},
		{"everything true", answersFromMask(1<<QuestionCount - 1), -1, true, CategoryCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.answers)
			if got.Score != tt.wantScore {
				t.Errorf("Score = %d, want %d", got.Score, tt.wantScore)
			}
			if got.HasRedFlags != tt.wantFlags {
				t.Errorf("HasRedFlags = %v, want %v", got.HasRedFlags, tt.wantFlags)
			}
			if got.Category != tt.wantCategory {
				t.Errorf("Category = %v, want %v", got.Category, tt.wantCategory)
			}
		})
	}
}

// Every one of the 4096 possible answer vectors is checked against the banding rules.
func TestClassify_AllInputs(t *testing.T) {
	for mask := 0; mask < 1<<QuestionCount; mask++ {
		a := answersFromMask(mask)
		got := Classify(a)

		if again := Classify(a); again != got {
			t.Fatalf("mask %012b: Classify not deterministic: %+v vs %+v", mask, got, again)
		}

		redFlag := a[9] || a[10] || a[11]
		positives := 0
		for i := 0; i < 9; i++ {
			if a[i] {
				positives++
			}
		}

		if got.HasRedFlags != redFlag {
			t.Fatalf("mask %012b: HasRedFlags = %v, want %v", mask, got.HasRedFlags, redFlag)
		}

		wantScore := positives
		if redFlag {
			wantScore -= RedFlagPenalty
		}
		if got.Score != wantScore {
			t.Fatalf("mask %012b: Score = %d, want %d", mask, got.Score, wantScore)
		}

		var want Category
		switch {
		case redFlag:
			want = CategoryCritical
		case positives <= 2:
			want = CategoryCritical
		case positives <= 6:
			want = CategoryOnHold
		default:
			want = CategorySafe
		}
		if got.Category != want {
			t.Fatalf("mask %012b: Category = %v, want %v", mask, got.Category, want)
		}
	}
}

func TestCategorize_RedFlagIndependentOfScore(t *testing.T) {
	// A hypothetical high score with a red flag still lands in CRITICAL.
	if got := categorize(20, true); got != CategoryCritical {
		t.Errorf("categorize(20, true) = %v, want CRITICAL", got)
	}
	if got := categorize(7, false); got != CategorySafe {
		t.Errorf("categorize(7, false) = %v, want SAFE", got)
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		input   string
		want    Category
		wantErr bool
	}{
		{"CRITICAL", CategoryCritical, false},
		{"critical", CategoryCritical, false},
		{"on_hold", CategoryOnHold, false},
		{"on-hold", CategoryOnHold, false},
		{" SAFE ", CategorySafe, false},
		{"green", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCategory(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseCategory(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseCategory(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
