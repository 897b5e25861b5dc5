package models

import "testing"

func validAddress() ShippingAddress {
	return ShippingAddress{
		FullName:     "Priya Sharma",
		Phone:        "9876543210",
		AddressLine1: "12 MG Road",
		City:         "Bengaluru",
		State:        "Karnataka",
		Pincode:      "560001",
	}
}

func TestShippingAddressValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ShippingAddress)
		wantErr string
	}{
		{
			name:   "valid address",
			mutate: func(a *ShippingAddress) {},
		},
		{
			name:    "missing name",
			mutate:  func(a *ShippingAddress) { a.FullName = "" },
			wantErr: "Please enter your full name",
		},
		{
			name:    "phone too short",
			mutate:  func(a *ShippingAddress) { a.Phone = "98765432" },
			wantErr: "Please enter a valid 10-digit phone number",
		},
		{
			name:    "phone not numeric",
			mutate:  func(a *ShippingAddress) { a.Phone = "98765abcde" },
			wantErr: "Please enter a valid 10-digit phone number",
		},
		{
			name:    "pincode too short",
			mutate:  func(a *ShippingAddress) { a.Pincode = "56001" },
			wantErr: "Please enter a valid 6-digit pincode",
		},
		{
			name:    "missing city",
			mutate:  func(a *ShippingAddress) { a.City = "" },
			wantErr: "Please enter your city",
		},
		{
			name: "first failing field wins",
			mutate: func(a *ShippingAddress) {
				a.FullName = ""
				a.Pincode = ""
			},
			wantErr: "Please enter your full name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr := validAddress()
			tt.mutate(&addr)
			err := addr.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil || err.Error() != tt.wantErr {
				t.Errorf("Validate() = %v, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestShippingAddressOptionalFields(t *testing.T) {
	addr := validAddress()
	addr.AddressLine2 = ""
	addr.Landmark = ""
	if err := addr.Validate(); err != nil {
		t.Errorf("Validate() with empty optional fields = %v, want nil", err)
	}
}
