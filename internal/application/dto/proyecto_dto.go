package dto

// CrearProyectoRequest entrada libre de creación de proyecto. Se admiten alias de
// campos (nombre/nombre_proyecto/nombreProyecto, depto/departamento) y cualquier
// otro campo, que viaja tal cual si se envía como cuerpo JSON.
type CrearProyectoRequest map[string]any
