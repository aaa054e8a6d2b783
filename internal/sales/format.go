package sales

import "fmt"

// FormatINR renders an INR amount the way the dashboard displays it:
// crores above 1 Cr, lakhs above 1 L, plain rupees below that.
func FormatINR(val float64) string {
	switch {
	case val >= Crore:
		return fmt.Sprintf("₹%.2f Cr", val/Crore)
	case val >= Lakh:
		return fmt.Sprintf("₹%.1f L", val/Lakh)
	default:
		return fmt.Sprintf("₹%.0f", val)
	}
}
