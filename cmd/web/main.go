// @title           SahyogJeevan API
// @version         1.0
// @description     Job marketplace connecting blue-collar workers with employers.
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:5000
// @BasePath        /api

package main

import "sahyogjeevan/internal/app"

func main() {
	app.Run()
}
