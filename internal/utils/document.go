package utils

import "strconv"

// mod-10 coefficients applied to the first nine digits of a cédula.
var documentCoefficients = [9]int{2, 1, 2, 1, 2, 1, 2, 1, 2}

// ValidDocument checks an Ecuadorian cédula number:
//   - exactly 10 numeric digits
//   - province code (first two digits) between 01 and 24
//   - third digit below 6 (natural persons)
//   - mod-10 check digit with 2,1,2,... coefficients, folding
//     two-digit products by subtracting 9.
func ValidDocument(document string) bool {
	if len(document) != 10 {
		return false
	}

	digits := make([]int, 10)
	for i, r := range document {
		if r < '0' || r > '9' {
			return false
		}
		digits[i] = int(r - '0')
	}

	province, err := strconv.Atoi(document[:2])
	if err != nil || province < 1 || province > 24 {
		return false
	}

	if digits[2] >= 6 {
		return false
	}

	sum := 0
	for i := 0; i < 9; i++ {
		v := digits[i] * documentCoefficients[i]
		if v >= 10 {
			v -= 9
		}
		sum += v
	}

	nextTen := ((sum + 9) / 10) * 10
	return nextTen-sum == digits[9]
}
