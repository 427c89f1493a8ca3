package fiscal

import (
	"fmt"
	"regexp"
	"strings"
)

// Estructura del RFC: 3 letras (persona moral) o 4 (persona física), fecha AAMMDD y homoclave de 3.
var rfcPattern = regexp.MustCompile(`^[A-ZÑ&]{3,4}[0-9]{6}[A-Z0-9]{3}$`)

// NormalizeRFC quita espacios y guiones y pasa a mayúsculas ("aaa-010101-aaa " → "AAA010101AAA").
func NormalizeRFC(rfc string) string {
	r := strings.ToUpper(strings.TrimSpace(rfc))
	return strings.NewReplacer(" ", "", "-", "").Replace(r)
}

// ValidateRFC valida la forma del RFC ya normalizado (longitud, letras iniciales, fecha y homoclave).
// No consulta la lista del SAT ni verifica el dígito de la homoclave.
func ValidateRFC(rfc string) error {
	if l := len([]rune(rfc)); l != 12 && l != 13 {
		return fmt.Errorf("fiscal: RFC debe tener 12 (moral) o 13 (física) caracteres, se recibieron %d", l)
	}
	if !rfcPattern.MatchString(rfc) {
		return fmt.Errorf("fiscal: RFC %q no tiene la estructura esperada", rfc)
	}
	if !validDate(rfcDate(rfc)) {
		return fmt.Errorf("fiscal: fecha inválida en RFC %q", rfc)
	}
	return nil
}

// IsGenericRFC indica si es uno de los RFC genéricos (público en general / extranjero).
func IsGenericRFC(rfc string) bool {
	return rfc == GenericRFCNational || rfc == GenericRFCForeign
}

// rfcDate extrae AAMMDD: va después de las letras iniciales (3 o 4).
func rfcDate(rfc string) string {
	r := []rune(rfc)
	start := len(r) - 9
	return string(r[start : start+6])
}

func validDate(yymmdd string) bool {
	mm := (yymmdd[2]-'0')*10 + (yymmdd[3] - '0')
	dd := (yymmdd[4]-'0')*10 + (yymmdd[5] - '0')
	return mm >= 1 && mm <= 12 && dd >= 1 && dd <= 31
}
