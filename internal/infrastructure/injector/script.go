package injector

// DarkSchemeQuery is the media query the script evaluates.
const DarkSchemeQuery = "(prefers-color-scheme: dark)"

// scriptTemplate renders the head script. Every value coming from the
// contract passes through the js escaper and sits inside a single-quoted
// string literal. The body never throws: storage and media query access
// have their own guards and the whole body is wrapped once more.
const scriptTemplate = `(function () {
  try {
    var key = '{{js .StorageKey}}';
    var mode = null;
    try {
{{- if eq .Backend "cookie"}}
      var parts = document.cookie ? String(document.cookie).split(';') : [];
      for (var i = 0; i < parts.length; i++) {
        var part = parts[i].replace(/^\s+/, '');
        var eq = part.indexOf('=');
        if (eq > 0 && part.substring(0, eq) === key) {
          mode = decodeURIComponent(part.substring(eq + 1));
          break;
        }
      }
{{- else}}
      mode = window.localStorage.getItem(key);
{{- end}}
    } catch (e) {
      mode = null;
    }
    if (mode !== 'light' && mode !== 'dark' && mode !== 'system') {
      mode = '{{js .DefaultMode}}';
    }
    var scheme = mode;
    if (mode === 'system') {
      scheme = 'light';
      try {
        if (window.matchMedia && window.matchMedia('{{js .Query}}').matches) {
          scheme = 'dark';
        }
      } catch (e) {
        scheme = 'light';
      }
    }
    var root = document.documentElement;
    root.classList.remove('light', 'dark');
    root.classList.add(scheme);
    root.setAttribute('{{js .ThemeAttribute}}', scheme);
    if (scheme === 'dark') {
{{- template "style" .Dark}}
    } else {
{{- template "style" .Light}}
    }
    var meta = document.querySelector('meta[name="{{js .MetaName}}"]');
    if (meta) {
      meta.setAttribute('content', scheme === 'dark' ? '{{js .Dark.MetaColor}}' : '{{js .Light.MetaColor}}');
    }
  } catch (e) {}
})();`

const styleTemplate = `{{define "style"}}
{{- range .Properties}}
      root.style.setProperty('{{js .Name}}', '{{js .Value}}');
{{- end}}
{{- if .Background}}
      root.style.backgroundColor = '{{js .Background}}';
{{- end}}
{{- if .Foreground}}
      root.style.color = '{{js .Foreground}}';
{{- end}}
{{- if .CriticalRules}}
      var style = document.createElement('style');
      style.id = '{{js .CriticalStyleID}}';
      style.textContent = '{{js .CriticalRules}}';
      document.head.appendChild(style);
{{- end}}
{{- end}}`

// attachTemplate renders the attach script. It runs at the end of <body>;
// when the first stylesheet has not applied yet it waits for the link to
// settle so the critical rules cover the gap.
const attachTemplate = `(function () {
  function release() {
    try {
      var el = document.getElementById('{{js .CriticalStyleID}}');
      if (el && el.parentNode) {
        el.parentNode.removeChild(el);
      }
    } catch (e) {}
  }
  try {
    var link = document.querySelector('link[rel="stylesheet"]');
    if (link && !link.sheet) {
      link.addEventListener('load', release);
      link.addEventListener('error', release);
      return;
    }
  } catch (e) {}
  release();
})();`
