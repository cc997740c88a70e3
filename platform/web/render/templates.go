package render

const registerPage = `<!DOCTYPE html>
<html>
<head>
    <title>My Notes - Register</title>
    <link href="https://cdn.jsdelivr.net/npm/bootstrap@5.3.0/dist/css/bootstrap.min.css" rel="stylesheet">
    <style>
        html, body { height: 100%; margin: 0; background: linear-gradient(135deg, #6a11cb 0%, #2575fc 100%); }
        body { display: flex; justify-content: center; align-items: center; }
        .card { padding: 30px; border-radius: 15px; width: 100%; max-width: 400px; }
    </style>
</head>
<body>
    <div class="card bg-white shadow">
        <h2 class="text-center text-primary mb-4">My Notes - Register</h2>
        <form method="POST">
            <div class="mb-3">
                <label class="form-label">Username</label>
                <input class="form-control" name="username" required>
            </div>
            <div class="mb-3">
                <label class="form-label">Password</label>
                <input class="form-control" type="password" name="password" required>
            </div>
            <button class="btn btn-success w-100">Register</button>
        </form>
        <p class="mt-3 text-center"><a href="/login">Already have an account? Login</a></p>
    </div>
</body>
</html>
`

const loginPage = `<!DOCTYPE html>
<html>
<head>
    <title>My Notes - Login</title>
    <link href="https://cdn.jsdelivr.net/npm/bootstrap@5.3.0/dist/css/bootstrap.min.css" rel="stylesheet">
    <style>
        html, body { height: 100%; margin: 0; background: linear-gradient(135deg, #6a11cb 0%, #2575fc 100%); }
        body { display: flex; justify-content: center; align-items: center; }
        .card { padding: 30px; border-radius: 15px; width: 100%; max-width: 400px; }
    </style>
</head>
<body>
    <div class="card bg-white shadow">
        <h2 class="text-center text-primary mb-4">My Notes - Login</h2>
        <form method="POST">
            <div class="mb-3">
                <label class="form-label">Username</label>
                <input class="form-control" name="username" required>
            </div>
            <div class="mb-3">
                <label class="form-label">Password</label>
                <input class="form-control" type="password" name="password" required>
            </div>
            <button class="btn btn-primary w-100">Login</button>
        </form>
        <p class="mt-3 text-center"><a href="/register">Don't have an account? Register</a></p>
    </div>
</body>
</html>
`

const dashboardPage = `<!DOCTYPE html>
<html>
<head>
    <title>My Notes Dashboard</title>
    <link href="https://cdn.jsdelivr.net/npm/bootstrap@5.3.0/dist/css/bootstrap.min.css" rel="stylesheet">
    <style>
        html, body { height: 100%; margin: 0; background: linear-gradient(135deg, #6a11cb 0%, #2575fc 100%); }
        body { display: flex; justify-content: center; align-items: center; }
        .container { background: rgba(255,255,255,0.95); padding: 30px; border-radius: 15px; width: 90%; max-width: 900px; height: 90%; overflow-y: auto; box-shadow: 0 10px 25px rgba(0,0,0,0.3); display: flex; flex-direction: column; }
        h1 { text-align: center; margin-bottom: 20px; }
        .notes { overflow-y: auto; flex-grow: 1; margin-top: 15px; }
        .note-card { background: #f8f9fa; padding: 15px; border-radius: 10px; margin-bottom: 10px; }
        textarea { resize: none; }
    </style>
</head>
<body>
    <div class="container">
        <h1>My Notes</h1>
        <form method="POST" class="mb-3">
            <div class="mb-2">
                <textarea class="form-control" name="note" rows="3" placeholder="Write your note here..." required></textarea>
            </div>
            <button class="btn btn-primary w-100">Add Note</button>
        </form>
        <div class="notes">
            {{if .Notes}}
                {{range .Notes}}
                    <div class="note-card">
                        <small class="text-muted">{{.CreatedAt.Format "2006-01-02 15:04:05"}}</small>
                        <p>{{.Content}}</p>
                    </div>
                {{end}}
            {{else}}
                <p>No notes yet. Start by adding one above!</p>
            {{end}}
        </div>
        <a href="/logout" class="btn btn-danger mt-3">Logout</a>
    </div>
</body>
</html>
`
