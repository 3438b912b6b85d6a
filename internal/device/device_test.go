package device

import "testing"

func env(m map[string]string) func(string) string {
	return func(key string) string { return m[key] }
}

func TestDetectDefaults(t *testing.T) {
	caps := Detect(env(map[string]string{"LANG": "en_US.UTF-8"}))
	if !caps.Color {
		t.Error("Color = false without NO_COLOR")
	}
	if caps.ReducedMotion {
		t.Error("ReducedMotion = true without the env var")
	}
	if !caps.Unicode {
		t.Error("Unicode = false for a UTF-8 locale")
	}
}

func TestDetectNoColor(t *testing.T) {
	caps := Detect(env(map[string]string{"NO_COLOR": "1"}))
	if caps.Color {
		t.Error("Color = true with NO_COLOR set")
	}
}

func TestDetectReducedMotion(t *testing.T) {
	for _, v := range []string{"1", "true", "YES", "on"} {
		caps := Detect(env(map[string]string{"EGGHUNT_REDUCED_MOTION": v}))
		if !caps.ReducedMotion {
			t.Errorf("ReducedMotion = false for %q", v)
		}
	}
	caps := Detect(env(map[string]string{"EGGHUNT_REDUCED_MOTION": "0"}))
	if caps.ReducedMotion {
		t.Error("ReducedMotion = true for 0")
	}
}

func TestDetectUnicode(t *testing.T) {
	cases := []struct {
		name string
		vars map[string]string
		want bool
	}{
		{"ascii locale", map[string]string{"LANG": "C"}, false},
		{"utf8 via LC_ALL", map[string]string{"LC_ALL": "en_GB.utf8", "LANG": "C"}, true},
		{"no locale at all", map[string]string{}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Detect(env(tc.vars)).Unicode; got != tc.want {
				t.Errorf("Unicode = %v, want %v", got, tc.want)
			}
		})
	}
}
