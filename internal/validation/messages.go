package validation

// messages maps form field -> rule tag -> message shown under the input.
var messages = map[string]map[string]string{
	"firstName": {
		"min": "El nombre debe tener al menos 2 caracteres",
		"max": "El nombre no puede tener mas de 50 caracteres",
	},
	"lastName": {
		"min": "El apellido debe tener al menos 2 caracteres",
		"max": "El apellido no puede tener mas de 50 caracteres",
	},
	"identificationNumber": {
		"digits": "La identificacion debe tener exactamente 13 digitos",
	},
	"birthDate": {
		"isodate": "La fecha debe tener formato YYYY-MM-DD",
		"past":    "La fecha de nacimiento debe ser en el pasado",
	},
	"address": {
		"required": "La direccion es obligatoria",
		"max":      "La direccion no puede tener mas de 255 caracteres",
	},
	"email": {
		"email": "Correo electronico invalido",
		"max":   "El correo no puede tener mas de 150 caracteres",
	},
	"phone": {
		"digits": "El telefono debe tener exactamente 8 digitos",
	},
	"amount": {
		"decimal":     "El monto debe ser un numero valido",
		"decimal_gt":  "El monto debe ser mayor a 0",
		"decimal_lte": "El monto excede el maximo permitido",
	},
	"paymentAmount": {
		"decimal":     "El monto debe ser un numero valido",
		"decimal_gte": "El monto debe ser mayor o igual a 0.01",
		"decimal_lte": "El monto excede el maximo permitido",
	},
	"termMonths": {
		"integer":     "El plazo debe ser un numero entero",
		"decimal_gt":  "El plazo debe ser mayor a 0",
		"decimal_lte": "El plazo excede el maximo permitido",
		"min":         "El plazo debe ser mayor a 0",
		"max":         "El plazo excede el maximo permitido",
	},
	"purpose": {
		"max": "El proposito no puede tener mas de 200 caracteres",
	},
	"annualInterestRate": {
		"decimal":     "La tasa debe ser un numero",
		"decimal_gte": "La tasa no puede ser negativa",
		"decimal_lte": "La tasa no puede ser mayor a 999.99",
	},
	"notes": {
		"min": "Las notas son obligatorias",
		"max": "Las notas no pueden tener mas de 200 caracteres",
	},
	"paymentNotes": {
		"max": "Las notas no pueden tener mas de 300 caracteres",
	},
	"paymentMethod": {
		"required":       "El metodo de pago es obligatorio",
		"payment_method": "El metodo de pago no es valido",
	},
}

const fallbackMessage = "Valor invalido"

func messageFor(field, tag string) string {
	if byTag, ok := messages[field]; ok {
		if msg, ok := byTag[tag]; ok {
			return msg
		}
	}
	return fallbackMessage
}
