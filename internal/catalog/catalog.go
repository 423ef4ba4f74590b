// Package catalog holds the Resolución 0312 de 2019 standards data.
//
// The 60 items below are the authoritative catalog revision this
// service scores against. IDs are stable across revisions because
// stored audits reference them; changing a weight retroactively
// changes the meaning of previously computed totals, so weight edits
// are a deliberate catalog revision, never a code tweak.
package catalog

import "github.com/auditx/auditx/internal/domain"

// Default builds the immutable default catalog. It panics only on a
// programming error in the data below (duplicate id, bad weight),
// which the catalog tests rule out.
func Default() domain.Catalog {
	c, err := domain.NewCatalog(standards)
	if err != nil {
		panic(err)
	}
	return c
}

var standards = []domain.Standard{
	{
		ID:          "1.1.1",
		Category:    "I. PLANEAR - Recursos",
		Title:       "Responsable del Sistema de Gestión de Seguridad y Salud en el Trabajo SG-SST",
		Description: "Debe designarse un responsable del SG-SST con las competencias necesarias.",
		Weight:      0.5,
		VerificationMethod: "Solicitar el soporte que contenga la asignación y documentación de las responsabilidades en SST a todos los niveles de la organización.",
		Criterion:          "Para la implementación y mejora continua del SG SST.",
	},
	{
		ID:          "1.1.2",
		Category:    "I. PLANEAR - Recursos",
		Title:       "Responsabilidades en el Sistema de Gestión de Seguridad y Salud en el Trabajo – SG-SST",
		Description: "Se deben asignar roles y responsabilidades en el SG-SST de manera clara y documentada.",
		Weight:      0.5,
		VerificationMethod: "Solicitar el soporte que contenga la asignación y documentación de las responsabilidades en SST a todos los niveles de la organización.",
		Criterion:          "Para la implementación y mejora continua del SG SST.",
	},
	{
		ID:          "1.1.3",
		Category:    "I. PLANEAR - Recursos",
		Title:       "Asignación de recursos para el Sistema de Gestión en Seguridad y Salud en el Trabajo – SG-SST",
		Description: "La empresa debe asignar recursos financieros, técnicos y humanos necesarios para implementar el SG-SST.",
		Weight:      0.5,
		VerificationMethod: "Constatar la existencia de evidencias físicas y/o documentales que demuestren la definición y asignación de los recursos financieros, humanos, técnicos y de otra índole para la implementación, mantenimiento y continuidad del SG SST, evidenciando la asignación de recursos con base en el plan de trabajo anual.",
		Criterion:          "Recursos financieros, humanos, técnicos y tecnológicos.",
	},
	{
		ID:          "1.1.4",
		Category:    "I. PLANEAR - Recursos",
		Title:       "Afiliación al Sistema General de Riesgos Laborales",
		Description: "Todos los trabajadores deben estar afiliados al Sistema General de Riesgos Laborales.",
		Weight:      0.5,
		VerificationMethod: "Todos los trabajadores, independientemente de su forma de vinculación o contratación están afiliados al Sistema General de Riesgos Laborales y el pago de los aportes se realiza conforme a la normativa y en la respectiva clase de riesgo.",
		Criterion:          "Asegurar la cobertura de riesgos laborales para todos los trabajadores.",
	},
	{
		ID:          "1.1.5",
		Category:    "I. PLANEAR - Recursos",
		Title:       "Pago de pensión trabajadores alto riesgo",
		Description: "Se debe garantizar el pago de pensión especial para trabajadores en actividades de alto riesgo.",
		Weight:      0.5,
		VerificationMethod: "Verificar si la empresa con la asistencia de la Administradora de Riesgos Laborales está cumpliendo con lo establecido en la presente resolución para actividades de alto riesgo.",
		Criterion:          "Cubrir los riesgos laborales específicos para actividades de alto riesgo según Decreto 2090 de 2003.",
	},
	{
		ID:          "1.1.6",
		Category:    "I. PLANEAR - Recursos",
		Title:       "Conformación COPASST / Vigía",
		Description: "Debe conformarse el Comité Paritario de Seguridad y Salud en el Trabajo o Vigía según el número de trabajadores.",
		Weight:      0.5,
		VerificationMethod: "Solicitar registros que constaten la capacitación y evaluación tanto para el Vigía en SST o para los miembros del COPASST según aplique que estén vigentes.",
		Criterion:          "Asegurar la formación y competencia de los representantes de SST.",
	},
	{
		ID:          "1.1.7",
		Category:    "I. PLANEAR - Recursos",
		Title:       "Capacitación COPASST / Vigía",
		Description: "Los miembros del COPASST o Vigía deben recibir capacitación en SST.",
		Weight:      0.5,
		VerificationMethod: "Solicitar registros que constaten la capacitación y evaluación tanto para el Vigía en SST o para los miembros del COPASST según aplique que estén vigentes.",
		Criterion:          "Asegurar la formación y competencia de los representantes de SST.",
	},
	{
		ID:          "1.1.8",
		Category:    "I. PLANEAR - Recursos",
		Title:       "Conformación Comité de Convivencia",
		Description: "Debe conformarse el Comité de Convivencia Laboral según normativa vigente.",
		Weight:      0.5,
		VerificationMethod: "La empresa conformó el Comité de Convivencia Laboral y este funciona de acuerdo con la normativa vigente.",
		Criterion:          "Promover un ambiente laboral sano y prevenir el acoso laboral.",
	},
	{
		ID:          "1.2.1",
		Category:    "I. PLANEAR - Capacitación SG-SST",
		Title:       "Programa Capacitación promoción y prevención PYP",
		Description: "Debe existir un programa de capacitación documentado en promoción y prevención en SST.",
		Weight:      2.0,
		VerificationMethod: "Se cuenta con un programa de capacitación anual en promoción y prevención, que incluye los peligros/riesgos prioritarios, extensivo a todos los niveles de la organización y el mismo se ejecuta.",
		Criterion:          "Fomentar la cultura de prevención y el conocimiento de los riesgos.",
	},
	{
		ID:          "1.2.2",
		Category:    "I. PLANEAR - Capacitación SG-SST",
		Title:       "Capacitación, Inducción y Reinducción en Sistema de Gestión de Seguridad y Salud en el Trabajo SG-SST",
		Description: "Todo trabajador debe recibir inducción y reinducción periódica en el SG-SST.",
		Weight:      2.0,
		VerificationMethod: "Solicitar el certificado de aprobación del curso de capacitación virtual de cincuenta (50) horas definido por el Ministerio de Trabajo, expedido a nombre del responsable del SG SST.",
		Criterion:          "Requisito de formación para el responsable del SG SST.",
	},
	{
		ID:          "1.2.3",
		Category:    "I. PLANEAR - Capacitación SG-SST",
		Title:       "Responsables del Sistema de Gestión de Seguridad y Salud en el Trabajo SG-SST con curso (50 horas)",
		Description: "El responsable del SG-SST debe tener certificación de curso de 50 horas en SST.",
		Weight:      2.0,
		VerificationMethod: "Solicitar el certificado de aprobación del curso de capacitación virtual de cincuenta (50) horas definido por el Ministerio de Trabajo, expedido a nombre del responsable del SG SST.",
		Criterion:          "Requisito de formación para el responsable del SG SST.",
	},
	{
		ID:          "2.1.1",
		Category:    "II. HACER - Política SG-SST",
		Title:       "Política del Sistema de Gestión de Seguridad y Salud en el Trabajo SG-SST firmada, fechada y comunicada",
		Description: "La política de SST debe estar firmada por el representante legal, fechada y comunicada a todos los trabajadores.",
		Weight:      1.0,
		VerificationMethod: "Revisar si los objetivos se encuentran definidos, cumplen con las condiciones mencionadas en el criterio y existen evidencias del proceso de difusión.",
		Criterion:          "Establecer metas claras para la gestión de SST.",
	},
	{
		ID:          "2.2.1",
		Category:    "II. HACER - Objetivos SG-SST",
		Title:       "Objetivos definidos, claros, medibles, cuantificables, con metas, documentados, revisados del SG-SST",
		Description: "Los objetivos del SG-SST deben ser SMART (específicos, medibles, alcanzables, relevantes y con plazo).",
		Weight:      1.0,
		VerificationMethod: "Revisar si los objetivos se encuentran definidos, cumplen con las condiciones mencionadas en el criterio y existen evidencias del proceso de difusión.",
		Criterion:          "Establecer metas claras para la gestión de SST.",
	},
	{
		ID:          "2.3.1",
		Category:    "II. HACER - Evaluación Inicial SG-SST",
		Title:       "Evaluación e identificación de prioridades",
		Description: "Se debe realizar evaluación inicial del SG-SST para identificar prioridades de intervención.",
		Weight:      1.0,
		VerificationMethod: "Solicitar el plan de trabajo anual para alcanzar los objetivos propuestos en el SG SST, el cual identifica metas, responsabilidades, recursos, cronograma de actividades, firmado por el empleador y el responsable del SG SST.",
		Criterion:          "Planificar las actividades para la consecución de los objetivos.",
	},
	{
		ID:          "2.4.1",
		Category:    "II. HACER - Plan Anual Trabajo",
		Title:       "Plan que identifica objetivos, metas, responsabilidad, recursos con cronograma y firmado",
		Description: "Debe existir un plan anual de trabajo con objetivos, metas, responsables, recursos y cronograma firmado.",
		Weight:      2.0,
		VerificationMethod: "Verificar el cumplimiento del mismo. En caso de desviaciones en el cumplimiento, solicitar los planes de mejora para el logro del plan inicial.",
		Criterion:          "Asegurar la ejecución efectiva del plan de trabajo.",
	},
	{
		ID:          "2.5.1",
		Category:    "II. HACER - Conservación Documental",
		Title:       "Archivo o retención documental del Sistema de Gestión en Seguridad y Salud en el Trabajo SG-SST",
		Description: "Se debe establecer un sistema de archivo y retención documental del SG-SST.",
		Weight:      2.0,
		VerificationMethod: "La empresa define la matriz legal actualizada.",
		Criterion:          "Identificar y cumplir con la normativa legal aplicable en SST.",
	},
	{
		ID:          "2.6.1",
		Category:    "II. HACER - Rendición de Cuentas",
		Title:       "Rendición sobre el desempeño",
		Description: "La alta dirección debe rendir cuentas sobre el desempeño del SG-SST.",
		Weight:      1.0,
		VerificationMethod: "La empresa define la matriz legal actualizada.",
		Criterion:          "Identificar y cumplir con la normativa legal aplicable en SST.",
	},
	{
		ID:          "2.7.1",
		Category:    "II. HACER - Normatividad Vigente",
		Title:       "Matriz legal",
		Description: "Debe mantenerse actualizada una matriz de requisitos legales aplicables en SST.",
		Weight:      2.0,
		VerificationMethod: "Constatar la existencia de mecanismos de comunicación interna y externa que tiene la empresa en materia de SST y comprobar que las acciones que se desarrollaron para dar respuesta a las comunicaciones recibidas son eficaces.",
		Criterion:          "Mantener una comunicación fluida sobre SST.",
	},
	{
		ID:          "2.8.1",
		Category:    "II. HACER - Comunicación",
		Title:       "Mecanismos de comunicación, auto reporte en Sistema de Gestión de Seguridad y Salud en el Trabajo SG-SST",
		Description: "Deben establecerse mecanismos de comunicación y auto-reporte en el SG-SST.",
		Weight:      1.0,
		VerificationMethod: "Constatar la existencia de mecanismos de comunicación interna y externa que tiene la empresa en materia de SST y comprobar que las acciones que se desarrollaron para dar respuesta a las comunicaciones recibidas son eficaces.",
		Criterion:          "Mantener una comunicación fluida sobre SST.",
	},
	{
		ID:          "2.9.1",
		Category:    "II. HACER - Adquisiciones",
		Title:       "Identificación, evaluación, para adquisición de productos y servicios en SG-SST",
		Description: "Se debe evaluar el impacto en SST de las adquisiciones de productos y servicios.",
		Weight:      1.0,
		VerificationMethod: "Constatar que para la selección y evaluación de proveedores y/o contratistas, se tienen en cuenta los aspectos de SST.",
		Criterion:          "Asegurar que terceros que interactúan con la empresa cumplan con estándares de SST.",
	},
	{
		ID:          "2.10.1",
		Category:    "II. HACER - Contratación",
		Title:       "Evaluación y selección de proveedores y contratistas",
		Description: "Debe existir un procedimiento para evaluar y seleccionar proveedores y contratistas en temas de SST.",
		Weight:      2.0,
		VerificationMethod: "Constatar que para la selección y evaluación de proveedores y/o contratistas, se tienen en cuenta los aspectos de SST.",
		Criterion:          "Asegurar que terceros que interactúan con la empresa cumplan con estándares de SST.",
	},
	{
		ID:          "2.11.1",
		Category:    "II. HACER - Gestión del Cambio",
		Title:       "Evaluación del impacto de cambios internos y externos en el SG-SST",
		Description: "Se debe evaluar el impacto de los cambios organizacionales en el SG-SST.",
		Weight:      1.0,
		VerificationMethod: "La empresa dispone de un sistema documental para el SG SST.",
		Criterion:          "Organizar y mantener la información del SG SST.",
	},
	{
		ID:          "3.1.1",
		Category:    "II. HACER - Condiciones de Salud",
		Title:       "Evaluación Médica Ocupacional",
		Description: "Debe realizarse evaluación médica ocupacional según los riesgos a los que están expuestos los trabajadores.",
		Weight:      1.0,
		VerificationMethod: "Solicitar el documento consolidado que evidencie el cumplimiento de lo requerido en el criterio.",
		Criterion:          "Demostrar el cumplimiento de los requisitos del SG SST.",
	},
	{
		ID:          "3.1.2",
		Category:    "II. HACER - Condiciones de Salud",
		Title:       "Actividades de Promoción y Prevención en Salud",
		Description: "Se deben implementar actividades de promoción y prevención de la salud de los trabajadores.",
		Weight:      1.0,
		VerificationMethod: "Verificar que al médico que realiza las evaluaciones ocupacionales, se le remitieron los soportes documentales respecto de los perfiles del cargo, descripción de las tareas y el medio en el cual desarrollará la labor los trabajadores.",
		Criterion:          "Facilitar al médico la evaluación integral de la salud del trabajador.",
	},
	{
		ID:          "3.1.3",
		Category:    "II. HACER - Condiciones de Salud",
		Title:       "Información al médico de los perfiles de cargo",
		Description: "Se debe proporcionar al médico ocupacional información sobre los perfiles de cargo y exposiciones.",
		Weight:      1.0,
		VerificationMethod: "Verificar que al médico que realiza las evaluaciones ocupacionales, se le remitieron los soportes documentales respecto de los perfiles del cargo, descripción de las tareas y el medio en el cual desarrollará la labor los trabajadores.",
		Criterion:          "Facilitar al médico la evaluación integral de la salud del trabajador.",
	},
	{
		ID:          "3.1.4",
		Category:    "II. HACER - Condiciones de Salud",
		Title:       "Realización de los exámenes médicos ocupacionales: preingreso, periódicos",
		Description: "Deben realizarse exámenes médicos de preingreso, periódicos, de retiro y post-incapacidad.",
		Weight:      1.0,
		VerificationMethod: "Evidenciar los soportes que demuestren que la custodia de las historias clínicas esté a cargo de una institución prestadora de servicios en SST o del médico que practica los exámenes laborales en la empresa.",
		Criterion:          "Garantizar la confidencialidad y seguridad de la información médica.",
	},
	{
		ID:          "3.1.5",
		Category:    "II. HACER - Condiciones de Salud",
		Title:       "Custodia de Historias Clínicas",
		Description: "Las historias clínicas ocupacionales deben custodiarse garantizando confidencialidad.",
		Weight:      1.0,
		VerificationMethod: "Evidenciar los soportes que demuestren que la custodia de las historias clínicas esté a cargo de una institución prestadora de servicios en SST o del médico que practica los exámenes laborales en la empresa.",
		Criterion:          "Garantizar la confidencialidad y seguridad de la información médica.",
	},
	{
		ID:          "3.1.6",
		Category:    "II. HACER - Condiciones de Salud",
		Title:       "Restricciones y recomendaciones médico laborales",
		Description: "Se deben implementar las restricciones y recomendaciones médico-laborales.",
		Weight:      1.0,
		VerificationMethod: "Solicitar documento de recomendaciones y restricciones a trabajadores y revisar que la empresa ha acatado todas las recomendaciones y restricciones médico-laborales prescritas a todos los trabajadores.",
		Criterion:          "Implementar las medidas necesarias para proteger la salud de los trabajadores.",
	},
	{
		ID:          "3.1.7",
		Category:    "II. HACER - Condiciones de Salud",
		Title:       "Estilos de vida y entornos saludables (controles tabaquismo, alcoholismo, farmacodependencia y otros)",
		Description: "Deben implementarse programas de estilos de vida saludable y prevención de adicciones.",
		Weight:      1.0,
		VerificationMethod: "Solicitar el programa respectivo y los documentos y registros que evidencien el cumplimiento del mismo.",
		Criterion:          "Gestionar y ejecutar actividades para la salud de los trabajadores.",
	},
	{
		ID:          "3.1.8",
		Category:    "II. HACER - Condiciones de Salud",
		Title:       "Agua potable, servicios sanitarios y disposición de basuras",
		Description: "Se debe garantizar agua potable, servicios sanitarios adecuados y disposición de residuos.",
		Weight:      1.0,
		VerificationMethod: "Mediante observación directa, verificar si se cumple lo que se exige en el criterio, dejando prueba fotográfica o fílmica al respecto.",
		Criterion:          "Asegurar condiciones básicas de higiene y salubridad en el lugar de trabajo.",
	},
	{
		ID:          "3.1.9",
		Category:    "II. HACER - Condiciones de Salud",
		Title:       "Eliminación adecuada de residuos sólidos, líquidos o gaseosos",
		Description: "Debe existir un programa de gestión integral de residuos sólidos, líquidos y gaseosos.",
		Weight:      1.0,
		VerificationMethod: "Mediante observación directa, constatar las evidencias en las que se dé cuenta de los procesos de eliminación de residuos conforme al criterio y solicitar contrato de empresa que elimina y dispone de los residuos peligrosos.",
		Criterion:          "Prevenir riesgos para la salud y el medio ambiente por manejo de residuos.",
	},
	{
		ID:          "3.2.1",
		Category:    "II. HACER - Registro/Reporte/Investigación",
		Title:       "Reporte de los accidentes de trabajo y enfermedad laboral a la ARL, EPS y Dirección Territorial",
		Description: "Todo accidente de trabajo y enfermedad laboral debe reportarse a las entidades competentes.",
		Weight:      2.0,
		VerificationMethod: "Realizar un muestreo del reporte de registro de accidente de trabajo (Furat) y el registro de enfermedades laborales (Furel) respectivo, verificando si el reporte se hizo dentro de los dos (2) días hábiles siguientes al evento.",
		Criterion:          "Asegurar el reporte oportuno de los eventos laborales.",
	},
	{
		ID:          "3.2.2",
		Category:    "II. HACER - Registro/Reporte/Investigación",
		Title:       "Investigación de Accidentes, Incidentes y Enfermedad Laboral",
		Description: "Se deben investigar todos los accidentes, incidentes y enfermedades laborales.",
		Weight:      2.0,
		VerificationMethod: "La empresa investiga todos los accidentes e incidentes de trabajo y las enfermedades cuando sean diagnosticadas como laborales, determinando las causas básicas e inmediatas.",
		Criterion:          "Identificar las causas raíz y prevenir la recurrencia de eventos.",
	},
	{
		ID:          "3.2.3",
		Category:    "II. HACER - Registro/Reporte/Investigación",
		Title:       "Registro y análisis estadístico de Incidentes, Accidentes de Trabajo y Enfermedad Laboral",
		Description: "Debe llevarse registro y análisis estadístico de incidentes, accidentes y enfermedades laborales.",
		Weight:      1.0,
		VerificationMethod: "Solicitar el registro estadístico actualizado de lo corrido del año y el año inmediatamente anterior al de la visita, así como la evidencia que contiene el análisis y las conclusiones derivadas.",
		Criterion:          "Monitorear la siniestralidad y utilizar los datos para la mejora.",
	},
	{
		ID:          "3.3.1",
		Category:    "II. HACER - Vigilancia Condiciones Salud",
		Title:       "Medición de la severidad de los Accidentes de Trabajo y Enfermedad Laboral",
		Description: "Se debe medir y analizar la severidad de los accidentes de trabajo y enfermedades laborales.",
		Weight:      1.0,
		VerificationMethod: "Solicitar los resultados de la medición para lo corrido del año y/o el año inmediatamente anterior y constatar el comportamiento de la severidad.",
		Criterion:          "Evaluar el impacto de los accidentes en términos de tiempo perdido.",
	},
	{
		ID:          "3.3.2",
		Category:    "II. HACER - Vigilancia Condiciones Salud",
		Title:       "Medición de la frecuencia de los Incidentes, Accidentes de Trabajo y Enfermedad Laboral",
		Description: "Debe calcularse el índice de frecuencia de incidentes, accidentes y enfermedades laborales.",
		Weight:      1.0,
		VerificationMethod: "Solicitar los resultados de la medición para lo corrido del año y/o el año inmediatamente anterior y constatar el comportamiento de la frecuencia de los accidentes.",
		Criterion:          "Evaluar la cantidad de accidentes ocurridos en un periodo.",
	},
	{
		ID:          "3.3.3",
		Category:    "II. HACER - Vigilancia Condiciones Salud",
		Title:       "Medición de la mortalidad de Accidentes de Trabajo y Enfermedad Laboral",
		Description: "Se debe llevar registro de la mortalidad por accidentes de trabajo y enfermedad laboral.",
		Weight:      1.0,
		VerificationMethod: "Solicitar los resultados de la medición para lo corrido del año y/o el año inmediatamente anterior y constatar el comportamiento de la mortalidad.",
		Criterion:          "Evaluar las fatalidades causadas por accidentes laborales.",
	},
	{
		ID:          "3.3.4",
		Category:    "II. HACER - Vigilancia Condiciones Salud",
		Title:       "Medición de la prevalencia de incidentes, Accidentes de Trabajo y Enfermedad Laboral",
		Description: "Debe medirse la prevalencia de incidentes, accidentes y enfermedades laborales.",
		Weight:      1.0,
		VerificationMethod: "Solicitar los resultados de la medición para lo corrido del año y/o el año inmediatamente anterior y constatar el comportamiento de la prevalencia de las enfermedades laborales.",
		Criterion:          "Evaluar la proporción de casos existentes de enfermedades laborales en un momento dado.",
	},
	{
		ID:          "3.3.5",
		Category:    "II. HACER - Vigilancia Condiciones Salud",
		Title:       "Medición de la incidencia de Incidentes, Accidentes de Trabajo y Enfermedad Laboral",
		Description: "Se debe calcular la incidencia de incidentes, accidentes y enfermedades laborales.",
		Weight:      1.0,
		VerificationMethod: "Solicitar los resultados de la medición para lo corrido del año y/o el año inmediatamente anterior y constatar el comportamiento de la incidencia de las enfermedades laborales.",
		Criterion:          "Evaluar la tasa de nuevos casos de enfermedades laborales en un periodo.",
	},
	{
		ID:          "3.3.6",
		Category:    "II. HACER - Vigilancia Condiciones Salud",
		Title:       "Medición del ausentismo por incidentes, Accidentes de Trabajo y Enfermedad Laboral",
		Description: "Debe medirse y analizarse el ausentismo relacionado con SST.",
		Weight:      1.0,
		VerificationMethod: "Solicitar los resultados de la medición para lo corrido del año y/o el año inmediatamente anterior y constatar el comportamiento del ausentismo.",
		Criterion:          "Evaluar el impacto del ausentismo en la productividad y la salud.",
	},
	{
		ID:          "4.1.1",
		Category:    "II. HACER - Identificación Peligros y Riesgos",
		Title:       "Metodología para la identificación, evaluación y valoración de peligros",
		Description: "Debe adoptarse una metodología sistemática para identificar, evaluar y valorar peligros (ej: GTC 45).",
		Weight:      4.0,
		VerificationMethod: "Verificar que se realiza la identificación de peligros, evaluación y valoración de los riesgos conforme a la metodología definida.",
		Criterion:          "Proceso sistemático para reconocer y cuantificar los riesgos.",
	},
	{
		ID:          "4.1.2",
		Category:    "II. HACER - Identificación Peligros y Riesgos",
		Title:       "Identificación de peligros con participación de todos los niveles de la empresa",
		Description: "La identificación de peligros debe hacerse con participación de todos los niveles.",
		Weight:      4.0,
		VerificationMethod: "La identificación de peligros se desarrolló con la participación de trabajadores de todos los niveles y es actualizada como mínimo una vez al año.",
		Criterion:          "Asegurar que la evaluación de riesgos se mantenga vigente y actualizada.",
	},
	{
		ID:          "4.1.3",
		Category:    "II. HACER - Identificación Peligros y Riesgos",
		Title:       "Identificación y priorización de la naturaleza de los peligros (Metodología adicional, cancerígenos y otros)",
		Description: "Deben identificarse y priorizarse peligros especiales como cancerígenos.",
		Weight:      3.0,
		VerificationMethod: "Verificar los soportes documentales de las mediciones ambientales realizadas y la remisión de estos resultados al COPASST o al Vigía de SST.",
		Criterion:          "Cuantificar la exposición a riesgos ambientales.",
	},
	{
		ID:          "4.1.4",
		Category:    "II. HACER - Identificación Peligros y Riesgos",
		Title:       "Realización mediciones ambientales, químicos, físicos y biológicos",
		Description: "Se deben realizar mediciones higiénicas de agentes químicos, físicos y biológicos según exposición.",
		Weight:      4.0,
		VerificationMethod: "Verificar los soportes documentales de las mediciones ambientales realizadas y la remisión de estos resultados al COPASST o al Vigía de SST.",
		Criterion:          "Cuantificar la exposición a riesgos ambientales.",
	},
	{
		ID:          "4.2.1",
		Category:    "II. HACER - Medidas Prevención y Control",
		Title:       "Se implementan las medidas de prevención y control de peligros",
		Description: "Deben implementarse controles siguiendo la jerarquía: eliminación, sustitución, ingeniería, administrativos, EPP.",
		Weight:      2.5,
		VerificationMethod: "Se implementan las medidas de prevención y control con base en el resultado de la identificación de peligros, acorde con el esquema de jerarquización.",
		Criterion:          "Aplicar medidas para eliminar o minimizar los riesgos.",
	},
	{
		ID:          "4.2.2",
		Category:    "II. HACER - Medidas Prevención y Control",
		Title:       "Se verifica aplicación de las medidas de prevención y control",
		Description: "Se debe verificar periódicamente la efectividad de las medidas de control implementadas.",
		Weight:      2.5,
		VerificationMethod: "Se verifica la aplicación por parte de los trabajadores de las medidas de prevención y control de los peligros/riesgos.",
		Criterion:          "Asegurar que los trabajadores siguen las directrices de seguridad.",
	},
	{
		ID:          "4.2.3",
		Category:    "II. HACER - Medidas Prevención y Control",
		Title:       "Hay procedimientos, instructivos, fichas, protocolos",
		Description: "Deben existir procedimientos, instructivos y protocolos de trabajo seguro documentados.",
		Weight:      2.5,
		VerificationMethod: "Solicitar los procedimientos, instructivos, fichas técnicas cuando aplique y protocolos de SST.",
		Criterion:          "Establecer un marco estructurado para la gestión de la seguridad.",
	},
	{
		ID:          "4.2.4",
		Category:    "II. HACER - Medidas Prevención y Control",
		Title:       "Inspección con el COPASST o Vigía",
		Description: "El COPASST o Vigía debe realizar inspecciones periódicas de seguridad.",
		Weight:      2.5,
		VerificationMethod: "Solicitar la evidencia de las inspecciones realizadas a las instalaciones, maquinaria y equipos, incluidos los relacionados con la prevención y atención de emergencias.",
		Criterion:          "Identificar condiciones inseguras y prevenir incidentes.",
	},
	{
		ID:          "4.2.5",
		Category:    "II. HACER - Medidas Prevención y Control",
		Title:       "Mantenimiento periódico de instalaciones, equipos, máquinas, herramientas",
		Description: "Debe existir programa de mantenimiento preventivo y correctivo de equipos e instalaciones.",
		Weight:      2.5,
		VerificationMethod: "Solicitar la evidencia del mantenimiento preventivo y/o correctivo en las instalaciones, equipos y herramientas de acuerdo con los manuales de uso.",
		Criterion:          "Garantizar el buen estado y funcionamiento de los elementos de trabajo.",
	},
	{
		ID:          "4.2.6",
		Category:    "II. HACER - Medidas Prevención y Control",
		Title:       "Entrega de Elementos de Protección Personal EPP, se verifica con contratistas y subcontratistas",
		Description: "Se debe entregar, capacitar y verificar uso de EPP, incluyendo contratistas.",
		Weight:      2.5,
		VerificationMethod: "Solicitar los soportes que evidencien la entrega y reposición de los Elementos de Protección Personal a los trabajadores. Verificar los soportes que evidencien la realización de la capacitación en el uso de los EPP.",
		Criterion:          "Proteger a los trabajadores de riesgos residuales mediante el uso de EPP.",
	},
	{
		ID:          "5.1.1",
		Category:    "II. HACER - Plan de Emergencias",
		Title:       "Se cuenta con el Plan de Prevención y Preparación ante emergencias",
		Description: "Debe existir un plan de prevención, preparación y respuesta ante emergencias documentado.",
		Weight:      5.0,
		VerificationMethod: "Solicitar el plan de prevención, preparación y respuesta ante emergencias, constatar su divulgación. Verificar si existen los planos de las instalaciones que identifican áreas y salidas de emergencia.",
		Criterion:          "Establecer procedimientos para responder a situaciones de emergencia.",
	},
	{
		ID:          "5.1.2",
		Category:    "II. HACER - Plan de Emergencias",
		Title:       "Brigada de prevención conformada, capacitada y dotada",
		Description: "Debe conformarse, capacitarse y dotarse una brigada de emergencias.",
		Weight:      5.0,
		VerificationMethod: "Solicitar el documento de conformación de la brigada de prevención, preparación y respuesta ante emergencias y verificar los soportes de la capacitación y entrega de la dotación.",
		Criterion:          "Contar con personal capacitado y equipado para atender emergencias.",
	},
	{
		ID:          "6.1.1",
		Category:    "III. VERIFICAR - Verificación SG-SST",
		Title:       "Indicadores estructura, proceso y resultado",
		Description: "Deben definirse y medirse indicadores de estructura, proceso y resultado del SG-SST.",
		Weight:      1.25,
		VerificationMethod: "Solicitar los indicadores de estructura, proceso y resultado del SG SST que se encuentren alineados al plan estratégico de la empresa.",
		Criterion:          "Medir el desempeño y la efectividad del SG SST.",
	},
	{
		ID:          "6.1.2",
		Category:    "III. VERIFICAR - Verificación SG-SST",
		Title:       "La empresa adelanta auditoría por lo menos una vez al año",
		Description: "Debe realizarse auditoría interna del SG-SST al menos una vez al año.",
		Weight:      1.25,
		VerificationMethod: "Solicitar el programa de la auditoría, el alcance, la periodicidad, la metodología y la presentación de informes y verificar que se haya planificado con la participación del COPASST o Vigía de SST.",
		Criterion:          "Evaluar el cumplimiento y la eficacia del SG SST.",
	},
	{
		ID:          "6.1.3",
		Category:    "III. VERIFICAR - Verificación SG-SST",
		Title:       "Revisión anual por la alta dirección, resultados y alcance de la auditoría",
		Description: "La alta dirección debe revisar anualmente el SG-SST y los resultados de la auditoría.",
		Weight:      1.25,
		VerificationMethod: "Se debe solicitar a la empresa los documentos, pruebas de la realización de actividades y obligaciones establecidas en el artículo 2.2.4.6.30 del Decreto 1072/2015.",
		Criterion:          "Verificar la integralidad del SG SST según la normativa.",
	},
	{
		ID:          "6.1.4",
		Category:    "III. VERIFICAR - Verificación SG-SST",
		Title:       "Planificar auditoría con el COPASST",
		Description: "La planificación de la auditoría debe hacerse con participación del COPASST o Vigía.",
		Weight:      1.25,
		VerificationMethod: "Solicitar el documento donde conste la revisión anual por la Alta Dirección, así como la comunicación de los resultados al COPASST o al Vigía de SST.",
		Criterion:          "Asegurar el compromiso de la alta dirección con la mejora continua.",
	},
	{
		ID:          "7.1.1",
		Category:    "IV. ACTUAR - Mejoramiento",
		Title:       "Definir acciones de Promoción y Prevención con base en resultados del SG-SST",
		Description: "Se deben definir acciones de mejora con base en los resultados del SG-SST.",
		Weight:      2.5,
		VerificationMethod: "Solicitar la evidencia documental de la implementación de las acciones preventivas y/o correctivas provenientes de los resultados y/o recomendaciones.",
		Criterion:          "Corregir deficiencias y mejorar el desempeño del SG SST.",
	},
	{
		ID:          "7.1.2",
		Category:    "IV. ACTUAR - Mejoramiento",
		Title:       "Toma de medidas correctivas, preventivas y de mejora",
		Description: "Deben implementarse acciones correctivas, preventivas y de mejora identificadas.",
		Weight:      2.5,
		VerificationMethod: "Solicitar la evidencia documental de las acciones correctivas, preventivas y/o de mejora que se implementaron según lo detectado en la revisión por la Alta Dirección.",
		Criterion:          "Implementar mejoras ante la ineficacia de las medidas de control.",
	},
	{
		ID:          "7.1.3",
		Category:    "IV. ACTUAR - Mejoramiento",
		Title:       "Ejecución de acciones preventivas, correctivas y de mejora de la investigación de incidentes, accidentes y enfermedad laboral",
		Description: "Las acciones derivadas de investigaciones deben implementarse y verificarse.",
		Weight:      2.5,
		VerificationMethod: "Solicitar la evidencia documental de las acciones preventivas, correctivas y/o de mejora planteadas como resultado de las investigaciones y verificar si han sido efectivas.",
		Criterion:          "Aplicar lecciones aprendidas de incidentes y accidentes.",
	},
	{
		ID:          "7.1.4",
		Category:    "IV. ACTUAR - Mejoramiento",
		Title:       "Implementar medidas y acciones correctivas de autoridades y de ARL",
		Description: "Deben implementarse las medidas ordenadas por autoridades y recomendadas por la ARL.",
		Weight:      2.5,
		VerificationMethod: "Solicitar la evidencia documental de las acciones correctivas realizadas en respuesta a los requerimientos o recomendaciones de las autoridades administrativas y ARL.",
		Criterion:          "Cumplir con las directrices y recomendaciones de entes de control.",
	},
}
