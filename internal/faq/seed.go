package faq

// defaultEntries is the seed copy shipped with the app. IDs are assigned
// at insert time.
func defaultEntries() []Entry {
	return []Entry{
		{
			Question:  "¿Cómo iniciar sesión?",
			Answer:    "Pulsa «Iniciar sesión» en la pantalla de bienvenida e introduce tu correo y contraseña. También puedes entrar con tu cuenta de Google o Apple.",
			Category:  "Cuenta",
			Keywords:  "login iniciar sesión cuenta acceso entrar google apple",
			IsPopular: true,
		},
		{
			Question:  "¿Cómo cambio mi contraseña?",
			Answer:    "Ve a Ajustes → Cuenta → Cambiar contraseña. Si la olvidaste, usa «¿Has olvidado tu contraseña?» en la pantalla de inicio de sesión.",
			Category:  "Cuenta",
			Keywords:  "contraseña password cambiar olvidada recuperar restablecer",
			IsPopular: true,
		},
		{
			Question:  "¿Cómo edito mi perfil?",
			Answer:    "Abre tu perfil desde el menú inferior y pulsa el icono de edición para cambiar tu nombre, foto y datos de contacto.",
			Category:  "Cuenta",
			Keywords:  "perfil editar foto avatar nombre datos",
			IsPopular: false,
		},
		{
			Question:  "¿Cómo activo el modo oscuro?",
			Answer:    "En Ajustes → Apariencia puedes elegir entre tema claro, oscuro o automático según el sistema.",
			Category:  "Personalización",
			Keywords:  "tema oscuro claro apariencia modo color",
			IsPopular: true,
		},
		{
			Question:  "¿Cómo borro el historial del chat?",
			Answer:    "Dentro del asistente, pulsa el icono de papelera en la parte superior para vaciar la conversación. El historial se elimina solo de este dispositivo.",
			Category:  "Asistente",
			Keywords:  "historial borrar limpiar conversación chat papelera",
			IsPopular: false,
		},
		{
			Question:  "¿Qué hago si la aplicación va lenta?",
			Answer:    "Cierra la aplicación por completo y vuelve a abrirla. Si el problema continúa, comprueba que tienes la última versión instalada.",
			Category:  "Soporte",
			Keywords:  "lenta rendimiento error fallo cuelga actualizar",
			IsPopular: false,
		},
		{
			Question:  "¿Cómo contacto con soporte?",
			Answer:    "Escríbenos desde Ajustes → Ayuda → Contactar con soporte, o envía un correo a soporte@vokaflow.com.",
			Category:  "Soporte",
			Keywords:  "soporte ayuda contacto correo email problema",
			IsPopular: true,
		},
	}
}
