package forms

// ValidateBeneficiary checks an add-beneficiary draft. Fields: name,
// bank, account, ifsc, mobile.
func ValidateBeneficiary(d Draft) Errors {
	errs := Errors{}

	requireField(d, errs, "name")
	requireField(d, errs, "bank")

	if account := requireField(d, errs, "account"); account != "" {
		if !accountPattern.MatchString(account) {
			errs["account"] = "must be 9 to 18 digits"
		}
	}

	if ifsc := requireField(d, errs, "ifsc"); ifsc != "" {
		if !ifscPattern.MatchString(ifsc) {
			errs["ifsc"] = "must be a valid 11-character IFSC code"
		}
	}

	if mobile := requireField(d, errs, "mobile"); mobile != "" {
		if !mobilePattern.MatchString(mobile) {
			errs["mobile"] = "must be a 10-digit mobile number"
		}
	}

	return errs
}

// ValidateFundRequest checks a fund request draft. Fields: bank, mode,
// utr, amount.
func ValidateFundRequest(d Draft) Errors {
	errs := Errors{}

	requireField(d, errs, "bank")
	requireField(d, errs, "mode")

	if utr := requireField(d, errs, "utr"); utr != "" {
		if len(utr) < 6 {
			errs["utr"] = "must be at least 6 characters"
		}
	}

	requireAmount(d, errs, "amount")

	return errs
}

// ValidateRecharge checks a recharge draft. Fields: operator, circle,
// account, amount.
func ValidateRecharge(d Draft) Errors {
	errs := Errors{}

	requireField(d, errs, "operator")
	requireField(d, errs, "circle")

	if account := requireField(d, errs, "account"); account != "" {
		if !digitsPattern.MatchString(account) {
			errs["account"] = "must contain digits only"
		} else if len(account) != 10 {
			errs["account"] = "must be a 10-digit number"
		}
	}

	requireAmount(d, errs, "amount")

	return errs
}

// ValidatePasswordChange checks a password-change draft. Fields: old,
// new, confirm.
func ValidatePasswordChange(d Draft) Errors {
	errs := Errors{}

	requireField(d, errs, "old")
	newPassword := requireField(d, errs, "new")
	confirm := requireField(d, errs, "confirm")

	if newPassword != "" && len(newPassword) < 8 {
		errs["new"] = "must be at least 8 characters"
	}
	if newPassword != "" && confirm != "" && newPassword != confirm {
		errs["confirm"] = "does not match the new password"
	}

	return errs
}
