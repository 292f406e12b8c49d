// obrasctl tareas de operación: migraciones, usuario administrador inicial e importación de personal.
//
// Uso:
//
//	obrasctl migrate up|down|status
//	obrasctl seed-admin --email admin@obra.co --password ********
//	obrasctl import-employees personal.csv [--latin1] [--dry-run]
//
// Lee la misma configuración que el API (variables de entorno o .env).
package main

func main() {
	Execute()
}
