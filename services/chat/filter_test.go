package chat

import "testing"

func TestFilterStigmatizedLanguage(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{
			"replacement",
			"That sounds crazy to me",
			"That sounds overwhelming to me",
		},
		{
			"drop without replacement",
			"Stop being so dramatic about it",
			"Stop being so about it",
		},
		{
			"case insensitive",
			"You are not a Failure",
			"You are not a capable",
		},
		{
			"punctuation tolerant",
			"It feels hopeless.",
			"It feels capable",
		},
		{
			"multiple terms",
			"I feel broken and weak today",
			"I feel healing and human today",
		},
		{
			"clean text untouched",
			"You are doing your best and that matters",
			"You are doing your best and that matters",
		},
		{
			"empty",
			"",
			"",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FilterStigmatizedLanguage(tc.in); got != tc.want {
				t.Errorf("FilterStigmatizedLanguage(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
