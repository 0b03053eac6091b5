package utils

import "testing"

func TestIsPowerOfTwo(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected bool
	}{
		{"zero", 0, false},
		{"negative", -1, false},
		{"one", 1, true},
		{"two", 2, true},
		{"three", 3, false},
		{"sixteen", 16, true},
		{"fifteen", 15, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsPowerOfTwo(tt.input); got != tt.expected {
				t.Errorf("IsPowerOfTwo(%d) = %v, expected %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestLog2(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected int
	}{
		{"one", 1, 0},
		{"two", 2, 1},
		{"eight", 8, 3},
		{"non-power of 2", 5, -1},
		{"zero", 0, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Log2(tt.input); got != tt.expected {
				t.Errorf("Log2(%d) = %d, expected %d", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNextPowerOfTwo(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected int
	}{
		{"zero", 0, 1},
		{"one", 1, 1},
		{"three", 3, 4},
		{"eight", 8, 8},
		{"nine", 9, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextPowerOfTwo(tt.input); got != tt.expected {
				t.Errorf("NextPowerOfTwo(%d) = %d, expected %d", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNearestPowerOfTwo(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected int
	}{
		{"zero", 0, 1},
		{"one", 1, 1},
		{"exact power", 8, 8},
		{"tie rounds down", 12, 8}, // halfway between 8 and 16
		{"closer to upper", 13, 16},
		{"closer to lower", 9, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NearestPowerOfTwo(tt.input); got != tt.expected {
				t.Errorf("NearestPowerOfTwo(%d) = %d, expected %d", tt.input, got, tt.expected)
			}
		})
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"default is valid", func(*Config) {}, false},
		{"zero code rate", func(c *Config) { c.CodeRate = 0 }, true},
		{"negative security bits", func(c *Config) { c.SecurityBits = -1 }, true},
		{"unknown field", func(c *Config) { c.FieldName = "bn254" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigQueryCount(t *testing.T) {
	cfg := DefaultConfig().WithSecurityBits(100).WithCodeRate(3)
	if got := cfg.QueryCount(); got != 34 {
		t.Errorf("QueryCount() = %d, expected 34", got)
	}
}

func TestConfigClone(t *testing.T) {
	cfg := DefaultConfig()
	clone := cfg.Clone()
	clone.CodeRate = 99
	if cfg.CodeRate == 99 {
		t.Errorf("Clone() did not produce an independent copy")
	}
}
