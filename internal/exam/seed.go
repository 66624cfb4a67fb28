package exam

// FinalExamChallenges returns the canonical Master's Final Examination
// challenge set. Keep IDs and ordinals stable; progression gating and
// point history depend on them.
func FinalExamChallenges() []Challenge {
	return []Challenge{
		{
			ID:            "raw-pointer-forensics",
			Title:         "Raw Pointer Forensics",
			Brief:         "Trace a chain of raw pointers and pinpoint which dereference is undefined behavior.",
			Difficulty:    DifficultyMaster,
			Points:        150,
			TimeLimitSecs: 90,
			Ordinal:       0,
			Question: Question{
				Prompt: "int x = 5; int* p = &x; int** pp = &p; *p = 7;\nAfter these statements, what does **pp evaluate to?",
				Options: []string{
					"5",
					"7",
					"The address of x",
					"Undefined behavior",
				},
				Answer:      1,
				Explanation: "pp points at p, and p still points at x, so **pp reads x, which *p = 7 just rewrote.",
			},
		},
		{
			ID:            "dangling-reference-hunt",
			Title:         "Dangling Reference Hunt",
			Brief:         "Spot the use-after-free hiding in a function that hands out a pointer to a dead local.",
			Difficulty:    DifficultyMaster,
			Points:        200,
			TimeLimitSecs: 120,
			Ordinal:       1,
			Question: Question{
				Prompt: "int* make() { int v = 42; return &v; }\nWhat is true of the pointer make() returns?",
				Options: []string{
					"It points at 42 for the rest of the program",
					"It is null",
					"It dangles: v's storage ends when make() returns",
					"It points into the heap",
				},
				Answer:      2,
				Explanation: "v lives on make()'s stack frame; the frame is gone after return, so any dereference is undefined behavior.",
			},
		},
		{
			ID:            "arithmetic-boundaries",
			Title:         "Arithmetic at the Boundary",
			Brief:         "Decide exactly how far pointer arithmetic may legally walk an array.",
			Difficulty:    DifficultyExpert,
			Points:        175,
			TimeLimitSecs: 100,
			Ordinal:       2,
			Question: Question{
				Prompt: "int a[4]; int* p = a;\nWhich is the last pointer value p may legally take via arithmetic?",
				Options: []string{
					"a + 3",
					"a + 4",
					"a + 5",
					"Any value, as long as it is never dereferenced",
				},
				Answer:      1,
				Explanation: "Arithmetic may form the one-past-the-end pointer a + 4 (but not dereference it); a + 5 is undefined even unread.",
			},
		},
		{
			ID:            "ownership-transfer",
			Title:         "Ownership Transfer",
			Brief:         "Follow a unique_ptr through a std::move and say who may delete the object.",
			Difficulty:    DifficultyExpert,
			Points:        160,
			TimeLimitSecs: 100,
			Ordinal:       3,
			Question: Question{
				Prompt: "auto a = std::make_unique<int>(1);\nauto b = std::move(a);\nWhat holds after the move?",
				Options: []string{
					"a and b share ownership",
					"b owns the int; a is empty",
					"a still owns the int; b is a copy",
					"The int was deleted by the move",
				},
				Answer:      1,
				Explanation: "unique_ptr is sole-owner: the move transfers the managed pointer to b and leaves a holding nullptr.",
			},
		},
		{
			ID:            "cycle-breaker",
			Title:         "Cycle Breaker",
			Brief:         "Break a shared_ptr reference cycle without leaking either node.",
			Difficulty:    DifficultyLegend,
			Points:        250,
			TimeLimitSecs: 150,
			Ordinal:       4,
			Question: Question{
				Prompt: "Two nodes hold shared_ptr members pointing at each other.\nWhich change lets both nodes be destroyed when the last outside owner drops?",
				Options: []string{
					"Call reset() in each destructor",
					"Make one direction a weak_ptr",
					"Use raw pointers for both directions",
					"Wrap both nodes in another shared_ptr",
				},
				Answer:      1,
				Explanation: "A weak_ptr back-edge does not contribute to the reference count, so the cycle no longer keeps both counts above zero.",
			},
		},
	}
}

// MustFinalExam builds the canonical catalog, panicking on a seed defect.
// The seed is compiled in, so a failure here is a programming error.
func MustFinalExam() *Catalog {
	cat, err := NewCatalog(FinalExamChallenges())
	if err != nil {
		panic(err)
	}
	return cat
}
